package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind values stored in the kind column.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction represents a transaction log row. OccurredAt is the business
// time of the event; CreatedAt is the immutable record-creation time that
// drives the edit window.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	OwnerID     uuid.UUID       `db:"owner_id"`
	Kind        string          `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Division    string          `db:"division"`
	Description string          `db:"description"`
	OccurredAt  time.Time       `db:"occurred_at"`
	AccountName string          `db:"account_name"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a new transaction.
type TransactionCreate struct {
	OwnerID     uuid.UUID
	Kind        string
	Amount      decimal.Decimal
	Category    string
	Division    string
	Description string
	OccurredAt  time.Time
	AccountName string
}

// TransactionFilter specifies predicates for listing transactions.
// Nil fields are not applied; From/To bound OccurredAt inclusively.
type TransactionFilter struct {
	Kind     *string
	Category *string
	Division *string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// Store defines the read-side transaction log operations.
type Store interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
}

// WriteStore defines the transaction log operations available inside a
// storage transaction.
type WriteStore interface {
	Store
	FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, row *Transaction) error
}

var columns = []any{
	"id", "owner_id", "kind", "amount", "category", "division",
	"description", "occurred_at", "account_name", "created_at",
}

package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account row. Accounts are unique per
// (owner_id, account_name) and are created lazily with a zero balance the
// first time anything references the name.
type Account struct {
	ID        uuid.UUID       `db:"id"`
	OwnerID   uuid.UUID       `db:"owner_id"`
	Name      string          `db:"account_name"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Store defines the read-side account operations.
type Store interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Account, error)
	Find(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error)
}

// WriteStore defines the account operations available inside a storage
// transaction. EnsureForUpdate is the upsert-with-default used for lazy
// account creation: the caller always gets a locked row back.
type WriteStore interface {
	Store
	FindForUpdate(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error)
	EnsureForUpdate(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}

var columns = []any{"id", "owner_id", "account_name", "balance", "created_at", "updated_at"}

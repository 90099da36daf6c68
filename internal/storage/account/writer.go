package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindForUpdate locks the account row for the rest of the transaction.
// Returns nil when no such account exists.
func (w *Writer) FindForUpdate(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error) {
	return w.find(ctx, ownerID, name, true)
}

// EnsureForUpdate returns the locked account row, creating it with a zero
// balance when the owner has never referenced the name before.
func (w *Writer) EnsureForUpdate(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error) {
	existing, err := w.FindForUpdate(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return w.insert(ctx, ownerID, name, decimal.Zero)
}

func (w *Writer) insert(ctx context.Context, ownerID uuid.UUID, name string, balance decimal.Decimal) (*Account, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("accounts", "id", "owner_id", "account_name", "balance", "created_at", "updated_at"),
		im.Values(psql.Arg(id, ownerID, name, balance, now, now)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return nil, err
	}

	return &Account{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateBalance persists a new balance for the given account.
func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
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

// FindByIDForUpdate locks the transaction row for the rest of the storage
// transaction. Returns nil when no such row exists for the owner.
func (w *Writer) FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return w.findByID(ctx, ownerID, id, true)
}

// Insert persists a new transaction and returns the stored row.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	createdAt := time.Now().UTC()

	q := psql.Insert(
		im.Into("transactions",
			"id", "owner_id", "kind", "amount", "category", "division",
			"description", "occurred_at", "account_name", "created_at"),
		im.Values(psql.Arg(
			id, create.OwnerID, create.Kind, create.Amount, create.Category,
			create.Division, create.Description, create.OccurredAt,
			create.AccountName, createdAt)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return nil, err
	}

	return &Transaction{
		ID:          id,
		OwnerID:     create.OwnerID,
		Kind:        create.Kind,
		Amount:      create.Amount,
		Category:    create.Category,
		Division:    create.Division,
		Description: create.Description,
		OccurredAt:  create.OccurredAt,
		AccountName: create.AccountName,
		CreatedAt:   createdAt,
	}, nil
}

// Update persists the mutable fields of an edited transaction. Kind, owner,
// and created_at never change after insert.
func (w *Writer) Update(ctx context.Context, row *Transaction) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("amount").ToArg(row.Amount),
		um.SetCol("category").ToArg(row.Category),
		um.SetCol("division").ToArg(row.Division),
		um.SetCol("description").ToArg(row.Description),
		um.SetCol("occurred_at").ToArg(row.OccurredAt),
		um.SetCol("account_name").ToArg(row.AccountName),
		um.Where(psql.Quote("id").EQ(psql.Arg(row.ID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

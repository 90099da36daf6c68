package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/money-manager/internal/storage/account"
	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// TxHandle is the commit/rollback surface of a database transaction.
type TxHandle interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer bundles the per-entity writers bound to a single database
// transaction. Either Commit or Rollback must be called exactly once.
type Writer struct {
	Tx          TxHandle
	Account     account.WriteStore
	Transaction transaction.WriteStore
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}

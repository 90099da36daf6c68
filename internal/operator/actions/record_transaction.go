package actions

import (
	"context"

	"github.com/carson-networks/money-manager/internal/storage"
	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// RecordTransaction appends an income/expense entry to the transaction log
// and applies its delta to the referenced account, creating the account with
// a zero balance when it does not exist yet.
type RecordTransaction struct {
	Create transaction.TransactionCreate

	// Result is the persisted row, set on success.
	Result *transaction.Transaction
}

func (r *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.EnsureForUpdate(ctx, r.Create.OwnerID, r.Create.AccountName)
	if err != nil {
		return err
	}

	row, err := writer.Transaction.Insert(ctx, &r.Create)
	if err != nil {
		return err
	}

	delta := deltaOf(row.Kind, row.Amount)
	newBalance := account.Balance.Add(delta)
	if err := writer.Account.UpdateBalance(ctx, account.ID, newBalance); err != nil {
		return err
	}

	r.Result = row
	return nil
}

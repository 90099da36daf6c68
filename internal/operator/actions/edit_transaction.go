package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/storage"
	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// TransactionPatch carries the fields an edit may change. Nil fields retain
// their prior value. Kind is deliberately absent: the income/expense nature
// of an entry is fixed at creation.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Category    *string
	Division    *string
	Description *string
	OccurredAt  *time.Time
	AccountName *string
}

// EditTransaction mutates an existing log entry and reconciles the account
// balances: the delta computed from the pre-patch state is reverted on the
// old account, then the delta from the patched state is applied to the new
// account. Both updates happen even when the account name is unchanged, so
// the net effect under an unchanged account is exercised the same way as a
// move between accounts.
type EditTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
	Patch         TransactionPatch

	// Result is the updated row, set on success.
	Result *transaction.Transaction
}

func (e *EditTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByIDForUpdate(ctx, e.OwnerID, e.TransactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTransactionMissing
	}

	oldDelta := deltaOf(existing.Kind, existing.Amount)
	oldAccountName := existing.AccountName

	updated := *existing
	if e.Patch.Amount != nil {
		updated.Amount = *e.Patch.Amount
	}
	if e.Patch.Category != nil {
		updated.Category = *e.Patch.Category
	}
	if e.Patch.Division != nil {
		updated.Division = *e.Patch.Division
	}
	if e.Patch.Description != nil {
		updated.Description = *e.Patch.Description
	}
	if e.Patch.OccurredAt != nil {
		updated.OccurredAt = *e.Patch.OccurredAt
	}
	if e.Patch.AccountName != nil {
		updated.AccountName = *e.Patch.AccountName
	}
	newDelta := deltaOf(updated.Kind, updated.Amount)

	if err := writer.Transaction.Update(ctx, &updated); err != nil {
		return err
	}

	oldAccount, err := writer.Account.EnsureForUpdate(ctx, e.OwnerID, oldAccountName)
	if err != nil {
		return err
	}
	if err := writer.Account.UpdateBalance(ctx, oldAccount.ID, oldAccount.Balance.Sub(oldDelta)); err != nil {
		return err
	}

	// Re-reads under the same transaction, so an unchanged account name
	// observes the reverted balance before the new delta lands.
	newAccount, err := writer.Account.EnsureForUpdate(ctx, e.OwnerID, updated.AccountName)
	if err != nil {
		return err
	}
	if err := writer.Account.UpdateBalance(ctx, newAccount.ID, newAccount.Balance.Add(newDelta)); err != nil {
		return err
	}

	e.Result = &updated
	return nil
}

package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/storage"
)

// Transfer moves funds between two of the owner's accounts. It is a pure
// ledger-to-ledger movement and writes no transaction log entry. Both
// accounts are created lazily; the overdraw check happens while the source
// row lock is held.
type Transfer struct {
	OwnerID     uuid.UUID
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal

	// New balances, set on success.
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.FromAccount == t.ToAccount {
		return ErrSameTransferAccount
	}

	from, err := writer.Account.EnsureForUpdate(ctx, t.OwnerID, t.FromAccount)
	if err != nil {
		return err
	}
	if from.Balance.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}

	to, err := writer.Account.EnsureForUpdate(ctx, t.OwnerID, t.ToAccount)
	if err != nil {
		return err
	}

	t.FromBalance = from.Balance.Sub(t.Amount)
	t.ToBalance = to.Balance.Add(t.Amount)

	if err := writer.Account.UpdateBalance(ctx, from.ID, t.FromBalance); err != nil {
		return err
	}
	if err := writer.Account.UpdateBalance(ctx, to.ID, t.ToBalance); err != nil {
		return err
	}

	return nil
}

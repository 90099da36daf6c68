package actions

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/storage"
)

// Errors the reconciliation actions can surface to the service layer.
var (
	ErrInsufficientFunds   = errors.New("insufficient balance in source account")
	ErrTransactionMissing  = errors.New("transaction not found")
	ErrSameTransferAccount = errors.New("transfer accounts must differ")
)

// IAction is a ledger write performed inside a single storage transaction.
// Actions that produce output set it on their own struct before returning.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// deltaOf derives the signed balance effect of a transaction. The sign is
// never stored; it always comes from the kind.
func deltaOf(kind string, amount decimal.Decimal) decimal.Decimal {
	if kind == "income" {
		return amount
	}
	return amount.Neg()
}

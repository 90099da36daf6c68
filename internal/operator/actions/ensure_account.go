package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/storage"
	"github.com/carson-networks/money-manager/internal/storage/account"
)

// EnsureAccount handles an explicit account creation request. Creation is
// idempotent: an existing account comes back untouched, an unknown name is
// created with a zero balance.
type EnsureAccount struct {
	OwnerID uuid.UUID
	Name    string

	// Result is the existing or newly created account, set on success.
	Result *account.Account
}

func (e *EnsureAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	acct, err := writer.Account.EnsureForUpdate(ctx, e.OwnerID, e.Name)
	if err != nil {
		return err
	}

	e.Result = acct
	return nil
}

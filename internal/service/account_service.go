package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/operator/actions"
	"github.com/carson-networks/money-manager/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor Processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor Processor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// ListAccounts returns the owner's accounts sorted by name ascending.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID) ([]Account, error) {
	rows, err := s.storage.Accounts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted, nil
}

// CreateAccount ensures the named account exists, returning the existing
// account or a newly created one with a zero balance.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, name string) (*Account, error) {
	if name == "" {
		return nil, newValidationError("accountName", "required")
	}

	action := &actions.EnsureAccount{
		OwnerID: ownerID,
		Name:    name,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := accountFromStorage(action.Result)
	return &created, nil
}

// Transfer moves amount from one of the owner's accounts to another. Both
// balance updates share one storage transaction; on any failure neither
// side applies.
func (s *AccountService) Transfer(ctx context.Context, ownerID uuid.UUID, fromAccount, toAccount string, amount decimal.Decimal) (*TransferResult, error) {
	if fromAccount == "" {
		return nil, newValidationError("fromAccount", "required")
	}
	if toAccount == "" {
		return nil, newValidationError("toAccount", "required")
	}
	if fromAccount == toAccount {
		return nil, newValidationError("toAccount", "accounts must differ")
	}
	if !amount.IsPositive() {
		return nil, newValidationError("amount", "must be a positive number")
	}

	action := &actions.Transfer{
		OwnerID:     ownerID,
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrInsufficientFunds) {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}

	return &TransferResult{
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
		FromBalance: action.FromBalance,
		ToBalance:   action.ToBalance,
	}, nil
}

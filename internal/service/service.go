package service

import (
	"context"
	"time"

	"github.com/carson-networks/money-manager/internal/operator/actions"
	"github.com/carson-networks/money-manager/internal/storage"
)

// Processor runs a ledger write action to completion. Implemented by the
// operator delegator; abstracted so services can be tested without a queue.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
}

// NewService creates a new Service. The location fixes the timezone used for
// month/week/year report windows.
func NewService(store *storage.Storage, processor Processor, loc *time.Location) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor, loc),
		Account:     NewAccountService(store, processor),
	}
}

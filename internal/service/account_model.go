package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID        uuid.UUID
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransferResult reports both balances after a completed transfer.
type TransferResult struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:        row.ID,
		Name:      row.Name,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

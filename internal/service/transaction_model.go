package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// Kind is the income/expense nature of a transaction. Closed set.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category classifies a transaction. Closed set shared between validation
// and the constants endpoint.
type Category string

const (
	CategoryFuel      Category = "Fuel"
	CategoryMovie     Category = "Movie"
	CategoryFood      Category = "Food"
	CategoryLoan      Category = "Loan"
	CategoryMedical   Category = "Medical"
	CategoryShopping  Category = "Shopping"
	CategoryRent      Category = "Rent"
	CategoryUtilities Category = "Utilities"
	CategoryTravel    Category = "Travel"
	CategoryOther     Category = "Other"
)

// Categories returns the full category set in its canonical order.
func Categories() []Category {
	return []Category{
		CategoryFuel, CategoryMovie, CategoryFood, CategoryLoan,
		CategoryMedical, CategoryShopping, CategoryRent,
		CategoryUtilities, CategoryTravel, CategoryOther,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Division is a cost-center tag orthogonal to category. Closed set.
type Division string

const (
	DivisionOffice   Division = "Office"
	DivisionPersonal Division = "Personal"
)

// Divisions returns the full division set.
func Divisions() []Division {
	return []Division{DivisionOffice, DivisionPersonal}
}

func (d Division) Valid() bool {
	return d == DivisionOffice || d == DivisionPersonal
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal
	Category    Category
	Division    Division
	Description string
	OccurredAt  time.Time
	AccountName string
	CreatedAt   time.Time
}

// Delta is the signed effect of the transaction on its account's balance:
// positive for income, negative for expense.
func (t Transaction) Delta() decimal.Decimal {
	if t.Kind == KindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// NewTransaction is the input for recording a transaction. All fields except
// Description are required.
type NewTransaction struct {
	Kind        Kind
	Amount      decimal.Decimal
	Category    Category
	Division    Division
	Description string
	OccurredAt  time.Time
	AccountName string
}

// TransactionPatch carries the fields an edit may change; nil fields retain
// their prior value.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Category    *Category
	Division    *Division
	Description *string
	OccurredAt  *time.Time
	AccountName *string
}

// Summary is the aggregate shape shared by the month/week/year/filter
// queries: totals plus the filtered, sorted list itself.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Transactions []Transaction
}

// CategoryTotal is one row of the expense-by-category summary.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Kind:        Kind(row.Kind),
		Amount:      row.Amount,
		Category:    Category(row.Category),
		Division:    Division(row.Division),
		Description: row.Description,
		OccurredAt:  row.OccurredAt,
		AccountName: row.AccountName,
		CreatedAt:   row.CreatedAt,
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted
}

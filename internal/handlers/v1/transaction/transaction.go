package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Type        string `json:"type" doc:"income or expense"`
	Amount      string `json:"amount" doc:"Positive decimal amount"`
	Category    string `json:"category" doc:"Spending category"`
	Division    string `json:"division" doc:"Cost-center division"`
	Description string `json:"description,omitempty" doc:"Free-text note"`
	DateTime    string `json:"dateTime" doc:"RFC3339 time the transaction occurred"`
	Account     string `json:"account" doc:"Account name the transaction applies to"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 time the record was created"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Type:        string(tx.Kind),
		Amount:      tx.Amount.String(),
		Category:    string(tx.Category),
		Division:    string(tx.Division),
		Description: tx.Description,
		DateTime:    tx.OccurredAt.Format(time.RFC3339),
		Account:     tx.AccountName,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

// SummaryResponseBody is the aggregate shape shared by the monthly, weekly,
// yearly, and filter queries.
type SummaryResponseBody struct {
	TotalIncome  string        `json:"totalIncome" doc:"Sum of income amounts in the window"`
	TotalExpense string        `json:"totalExpense" doc:"Sum of expense amounts in the window"`
	Balance      string        `json:"balance" doc:"totalIncome minus totalExpense"`
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, most recent first"`
}

func summaryFromService(summary *service.Summary) SummaryResponseBody {
	converted := make([]Transaction, len(summary.Transactions))
	for i, tx := range summary.Transactions {
		converted[i] = transactionFromService(tx)
	}
	return SummaryResponseBody{
		TotalIncome:  summary.TotalIncome.String(),
		TotalExpense: summary.TotalExpense.String(),
		Balance:      summary.Balance.String(),
		Transactions: converted,
	}
}

// parseOwner resolves the owner identifier forwarded by the identity layer.
func parseOwner(header string) (uuid.UUID, error) {
	ownerID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "invalid X-User-ID header", err)
	}
	return ownerID, nil
}

// parseTransactionID resolves a transaction UUID from a path parameter.
func parseTransactionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	return id, nil
}

// parseQueryTime accepts RFC3339 or a plain calendar date.
func parseQueryTime(field, raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field+", expected RFC3339 or YYYY-MM-DD", err)
	}
	return t, nil
}

package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-manager/internal/logging"
	"github.com/carson-networks/money-manager/internal/service"
)

// AddTransactionInput is the Huma input for recording a transaction.
type AddTransactionInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	Body    AddTransactionBody
}

// AddTransactionBody is the request body fields for recording a transaction.
type AddTransactionBody struct {
	Type        string `json:"type" enum:"income,expense" doc:"income or expense"`
	Amount      string `json:"amount" doc:"Positive decimal amount (e.g. '42.75')"`
	Category    string `json:"category" doc:"Spending category, see the constants endpoint"`
	Division    string `json:"division" doc:"Cost-center division, see the constants endpoint"`
	Description string `json:"description,omitempty" doc:"Optional free-text note"`
	DateTime    string `json:"dateTime" format:"date-time" doc:"RFC3339 time the transaction occurred"`
	Account     string `json:"account" minLength:"1" doc:"Account name, created on first use"`
}

// AddTransactionOutput is the Huma output for recording a transaction.
type AddTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionRecorder is the interface for recording transactions.
type transactionRecorder interface {
	AddTransaction(ctx context.Context, ownerID uuid.UUID, input service.NewTransaction) (*service.Transaction, error)
}

// AddTransactionHandler handles POST /v1/transaction.
type AddTransactionHandler struct {
	TransactionService transactionRecorder
}

// NewAddTransactionHandler creates a new AddTransactionHandler.
func NewAddTransactionHandler(svc transactionRecorder) *AddTransactionHandler {
	return &AddTransactionHandler{TransactionService: svc}
}

// Register registers the add transaction endpoint with the Huma API.
func (h *AddTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Record a transaction",
		Description: "Records an income or expense entry and adjusts the named account's balance in the same storage transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseAddTransactionInput(input *AddTransactionInput) (service.NewTransaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	occurredAt, err := time.Parse(time.RFC3339, input.Body.DateTime)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid dateTime, expected RFC3339", err)
	}

	return service.NewTransaction{
		Kind:        service.Kind(input.Body.Type),
		Amount:      amount,
		Category:    service.Category(input.Body.Category),
		Division:    service.Division(input.Body.Division),
		Description: input.Body.Description,
		OccurredAt:  occurredAt,
		AccountName: input.Body.Account,
	}, nil
}

func (h *AddTransactionHandler) handle(ctx context.Context, input *AddTransactionInput) (*AddTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	newTransaction, err := parseAddTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("addTransactionMs")
	}
	created, err := h.TransactionService.AddTransaction(ctx, ownerID, newTransaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to record transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &AddTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(*created),
	}, nil
}

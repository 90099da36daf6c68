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

// EditTransactionInput is the Huma input for editing a transaction.
type EditTransactionInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	ID      string `path:"id" doc:"Transaction UUID"`
	Body    EditTransactionBody
}

// EditTransactionBody carries the fields an edit may change. Absent fields
// keep their prior value; type and creation time are immutable.
type EditTransactionBody struct {
	Amount      *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	Category    *string `json:"category,omitempty" doc:"New category"`
	Division    *string `json:"division,omitempty" doc:"New division"`
	Description *string `json:"description,omitempty" doc:"New free-text note"`
	DateTime    *string `json:"dateTime,omitempty" format:"date-time" doc:"New RFC3339 occurrence time"`
	Account     *string `json:"account,omitempty" doc:"New account name, created on first use"`
}

// EditTransactionOutput is the Huma output for editing a transaction.
type EditTransactionOutput struct {
	Body Transaction
}

// transactionEditor is the interface for editing transactions.
type transactionEditor interface {
	EditTransaction(ctx context.Context, ownerID, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
}

// EditTransactionHandler handles PUT /v1/transaction/{id}.
type EditTransactionHandler struct {
	TransactionService transactionEditor
}

// NewEditTransactionHandler creates a new EditTransactionHandler.
func NewEditTransactionHandler(svc transactionEditor) *EditTransactionHandler {
	return &EditTransactionHandler{TransactionService: svc}
}

// Register registers the edit transaction endpoint with the Huma API.
func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Edit a transaction",
		Description: "Applies a partial update to a transaction created within the last 12 hours and reconciles the affected account balances.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseEditTransactionInput(input *EditTransactionInput) (service.TransactionPatch, error) {
	patch := service.TransactionPatch{
		Category:    (*service.Category)(input.Body.Category),
		Division:    (*service.Division)(input.Body.Division),
		Description: input.Body.Description,
		AccountName: input.Body.Account,
	}

	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount = &amount
	}

	if input.Body.DateTime != nil {
		occurredAt, err := time.Parse(time.RFC3339, *input.Body.DateTime)
		if err != nil {
			return service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid dateTime, expected RFC3339", err)
		}
		patch.OccurredAt = &occurredAt
	}

	return patch, nil
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *EditTransactionInput) (*EditTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	patch, err := parseEditTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("editTransactionMs")
	}
	updated, err := h.TransactionService.EditTransaction(ctx, ownerID, id, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to edit transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", updated.ID.String())
	}

	return &EditTransactionOutput{Body: transactionFromService(*updated)}, nil
}

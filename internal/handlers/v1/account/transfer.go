package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-manager/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-manager/internal/logging"
	"github.com/carson-networks/money-manager/internal/service"
)

// TransferInput is the Huma input for transferring between accounts.
type TransferInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	Body    TransferBody
}

// TransferBody is the request body fields for a transfer.
type TransferBody struct {
	FromAccount string `json:"fromAccount" minLength:"1" doc:"Source account name"`
	ToAccount   string `json:"toAccount" minLength:"1" doc:"Destination account name"`
	Amount      string `json:"amount" doc:"Positive decimal amount to move (e.g. '25.50')"`
}

// TransferResponse is the response body for a transfer.
type TransferResponse struct {
	FromAccount string `json:"fromAccount" doc:"Source account name"`
	ToAccount   string `json:"toAccount" doc:"Destination account name"`
	Amount      string `json:"amount" doc:"Amount moved"`
	FromBalance string `json:"fromBalance" doc:"Source balance after the transfer"`
	ToBalance   string `json:"toBalance" doc:"Destination balance after the transfer"`
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Body TransferResponse
}

// accountTransferrer is the interface for moving funds between accounts.
type accountTransferrer interface {
	Transfer(ctx context.Context, ownerID uuid.UUID, fromAccount, toAccount string, amount decimal.Decimal) (*service.TransferResult, error)
}

// TransferHandler handles POST /v1/account/transfer.
type TransferHandler struct {
	AccountService accountTransferrer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc accountTransferrer) *TransferHandler {
	return &TransferHandler{AccountService: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer-between-accounts",
		Method:      http.MethodPost,
		Path:        "/v1/account/transfer",
		Summary:     "Transfer between accounts",
		Description: "Moves an amount from one of the caller's accounts to another. Both balance updates apply atomically or not at all.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	result, err := h.AccountService.Transfer(ctx, ownerID, input.Body.FromAccount, input.Body.ToAccount, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to transfer between accounts")
	}

	if logData != nil {
		logData.AddData("fromAccount", result.FromAccount)
		logData.AddData("toAccount", result.ToAccount)
	}

	return &TransferOutput{
		Body: TransferResponse{
			FromAccount: result.FromAccount,
			ToAccount:   result.ToAccount,
			Amount:      result.Amount.String(),
			FromBalance: result.FromBalance.String(),
			ToBalance:   result.ToBalance.String(),
		},
	}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-manager/internal/logging"
)

// CanEditInput is the Huma input for the edit-window probe.
type CanEditInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	ID      string `path:"id" doc:"Transaction UUID"`
}

// CanEditResponseBody is the response body for the edit-window probe.
type CanEditResponseBody struct {
	CanEdit bool `json:"canEdit" doc:"True while the transaction is inside the 12-hour edit window"`
}

// CanEditOutput is the Huma output for the edit-window probe.
type CanEditOutput struct {
	Body CanEditResponseBody
}

// editChecker is the interface for checking the edit window.
type editChecker interface {
	CanEdit(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

// CanEditHandler handles GET /v1/transaction/{id}/can-edit.
type CanEditHandler struct {
	TransactionService editChecker
}

// NewCanEditHandler creates a new CanEditHandler.
func NewCanEditHandler(svc editChecker) *CanEditHandler {
	return &CanEditHandler{TransactionService: svc}
}

// Register registers the edit-window probe with the Huma API.
func (h *CanEditHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "can-edit-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}/can-edit",
		Summary:     "Check the edit window",
		Description: "Reports whether the transaction can still be edited. Clients use this to enable or disable edit controls.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CanEditHandler) handle(ctx context.Context, input *CanEditInput) (*CanEditOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("canEditMs")
	}
	canEdit, err := h.TransactionService.CanEdit(ctx, ownerID, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to check edit window")
	}

	return &CanEditOutput{Body: CanEditResponseBody{CanEdit: canEdit}}, nil
}

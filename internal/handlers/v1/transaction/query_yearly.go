package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-manager/internal/logging"
	"github.com/carson-networks/money-manager/internal/service"
)

// YearlyQueryInput is the Huma input for the yearly summary.
type YearlyQueryInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	Year    int    `query:"year" minimum:"1" doc:"Calendar year (e.g. 2025)"`
}

// YearlyQueryOutput is the Huma output for the yearly summary.
type YearlyQueryOutput struct {
	Body SummaryResponseBody
}

// yearlySummarizer is the interface for the yearly aggregation.
type yearlySummarizer interface {
	YearlySummary(ctx context.Context, ownerID uuid.UUID, year int) (*service.Summary, error)
}

// YearlyQueryHandler handles GET /v1/transactions/yearly.
type YearlyQueryHandler struct {
	TransactionService yearlySummarizer
}

// NewYearlyQueryHandler creates a new YearlyQueryHandler.
func NewYearlyQueryHandler(svc yearlySummarizer) *YearlyQueryHandler {
	return &YearlyQueryHandler{TransactionService: svc}
}

// Register registers the yearly summary endpoint with the Huma API.
func (h *YearlyQueryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "yearly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/yearly",
		Summary:     "Yearly summary",
		Description: "Aggregates the caller's transactions for one calendar year.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *YearlyQueryHandler) handle(ctx context.Context, input *YearlyQueryInput) (*YearlyQueryOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("yearlySummaryMs")
	}
	summary, err := h.TransactionService.YearlySummary(ctx, ownerID, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to build yearly summary")
	}

	return &YearlyQueryOutput{Body: summaryFromService(summary)}, nil
}

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

// MonthlyQueryInput is the Huma input for the monthly summary.
type MonthlyQueryInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	Year    int    `query:"year" minimum:"1" doc:"Calendar year (e.g. 2025)"`
	Month   int    `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// MonthlyQueryOutput is the Huma output for the monthly summary.
type MonthlyQueryOutput struct {
	Body SummaryResponseBody
}

// monthlySummarizer is the interface for the monthly aggregation.
type monthlySummarizer interface {
	MonthlySummary(ctx context.Context, ownerID uuid.UUID, year, month int) (*service.Summary, error)
}

// MonthlyQueryHandler handles GET /v1/transactions/monthly.
type MonthlyQueryHandler struct {
	TransactionService monthlySummarizer
}

// NewMonthlyQueryHandler creates a new MonthlyQueryHandler.
func NewMonthlyQueryHandler(svc monthlySummarizer) *MonthlyQueryHandler {
	return &MonthlyQueryHandler{TransactionService: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *MonthlyQueryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/monthly",
		Summary:     "Monthly summary",
		Description: "Aggregates the caller's transactions for one calendar month: income and expense totals plus the list itself.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *MonthlyQueryHandler) handle(ctx context.Context, input *MonthlyQueryInput) (*MonthlyQueryOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summary, err := h.TransactionService.MonthlySummary(ctx, ownerID, input.Year, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to build monthly summary")
	}

	return &MonthlyQueryOutput{Body: summaryFromService(summary)}, nil
}

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

// WeeklyQueryInput is the Huma input for the weekly summary.
type WeeklyQueryInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	Year    int    `query:"year" minimum:"1" doc:"ISO week-numbering year"`
	Week    int    `query:"week" minimum:"1" maximum:"53" doc:"ISO week number, 1-53"`
}

// WeeklyQueryOutput is the Huma output for the weekly summary.
type WeeklyQueryOutput struct {
	Body SummaryResponseBody
}

// weeklySummarizer is the interface for the weekly aggregation.
type weeklySummarizer interface {
	WeeklySummary(ctx context.Context, ownerID uuid.UUID, year, week int) (*service.Summary, error)
}

// WeeklyQueryHandler handles GET /v1/transactions/weekly.
type WeeklyQueryHandler struct {
	TransactionService weeklySummarizer
}

// NewWeeklyQueryHandler creates a new WeeklyQueryHandler.
func NewWeeklyQueryHandler(svc weeklySummarizer) *WeeklyQueryHandler {
	return &WeeklyQueryHandler{TransactionService: svc}
}

// Register registers the weekly summary endpoint with the Huma API.
func (h *WeeklyQueryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "weekly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/weekly",
		Summary:     "Weekly summary",
		Description: "Aggregates the caller's transactions for one ISO week, Monday through Sunday.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *WeeklyQueryHandler) handle(ctx context.Context, input *WeeklyQueryInput) (*WeeklyQueryOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("weeklySummaryMs")
	}
	summary, err := h.TransactionService.WeeklySummary(ctx, ownerID, input.Year, input.Week)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to build weekly summary")
	}

	return &WeeklyQueryOutput{Body: summaryFromService(summary)}, nil
}

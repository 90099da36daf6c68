package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-manager/internal/logging"
	"github.com/carson-networks/money-manager/internal/service"
)

// CategorySummaryInput is the Huma input for the expense-by-category summary.
type CategorySummaryInput struct {
	OwnerID string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	From    string `query:"from" doc:"Inclusive lower bound, RFC3339 or YYYY-MM-DD"`
	To      string `query:"to" doc:"Inclusive upper bound extended to end of day, RFC3339 or YYYY-MM-DD"`
}

// CategoryTotalEntry is one row of the expense-by-category summary.
type CategoryTotalEntry struct {
	Category string `json:"category" doc:"Spending category"`
	Total    string `json:"total" doc:"Sum of expense amounts in the category"`
}

// CategorySummaryResponseBody is the response body for the category summary.
type CategorySummaryResponseBody struct {
	Summary []CategoryTotalEntry `json:"summary" doc:"Expense totals per category, largest first"`
}

// CategorySummaryOutput is the Huma output for the category summary.
type CategorySummaryOutput struct {
	Body CategorySummaryResponseBody
}

// categorySummarizer is the interface for the category aggregation.
type categorySummarizer interface {
	CategorySummary(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]service.CategoryTotal, error)
}

// CategorySummaryHandler handles GET /v1/transactions/category-summary.
type CategorySummaryHandler struct {
	TransactionService categorySummarizer
}

// NewCategorySummaryHandler creates a new CategorySummaryHandler.
func NewCategorySummaryHandler(svc categorySummarizer) *CategorySummaryHandler {
	return &CategorySummaryHandler{TransactionService: svc}
}

// Register registers the category summary endpoint with the Huma API.
func (h *CategorySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/category-summary",
		Summary:     "Expense totals by category",
		Description: "Totals the caller's expenses per category over an optional date range, sorted by total descending.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *CategorySummaryHandler) handle(ctx context.Context, input *CategorySummaryInput) (*CategorySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	var from, to *time.Time
	if input.From != "" {
		parsed, err := parseQueryTime("from", input.From)
		if err != nil {
			return nil, err
		}
		from = &parsed
	}
	if input.To != "" {
		parsed, err := parseQueryTime("to", input.To)
		if err != nil {
			return nil, err
		}
		to = &parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categorySummaryMs")
	}
	totals, err := h.TransactionService.CategorySummary(ctx, ownerID, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to build category summary")
	}

	converted := make([]CategoryTotalEntry, len(totals))
	for i, entry := range totals {
		converted[i] = CategoryTotalEntry{
			Category: string(entry.Category),
			Total:    entry.Total.String(),
		}
	}

	return &CategorySummaryOutput{
		Body: CategorySummaryResponseBody{Summary: converted},
	}, nil
}

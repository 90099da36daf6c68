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

// FilterQueryInput is the Huma input for the filter query. Every predicate is
// optional; absent predicates match everything.
type FilterQueryInput struct {
	OwnerID  string `header:"X-User-ID" required:"true" doc:"Owner UUID forwarded by the identity layer"`
	Category string `query:"category" doc:"Only transactions in this category"`
	Division string `query:"division" doc:"Only transactions in this division"`
	From     string `query:"from" doc:"Inclusive lower bound, RFC3339 or YYYY-MM-DD"`
	To       string `query:"to" doc:"Inclusive upper bound extended to end of day, RFC3339 or YYYY-MM-DD"`
}

// FilterQueryOutput is the Huma output for the filter query.
type FilterQueryOutput struct {
	Body SummaryResponseBody
}

// filterSummarizer is the interface for the filtered aggregation.
type filterSummarizer interface {
	FilterSummary(ctx context.Context, ownerID uuid.UUID, query service.TransactionQuery) (*service.Summary, error)
}

// FilterQueryHandler handles GET /v1/transactions/filter.
type FilterQueryHandler struct {
	TransactionService filterSummarizer
}

// NewFilterQueryHandler creates a new FilterQueryHandler.
func NewFilterQueryHandler(svc filterSummarizer) *FilterQueryHandler {
	return &FilterQueryHandler{TransactionService: svc}
}

// Register registers the filter query endpoint with the Huma API.
func (h *FilterQueryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "filter-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/filter",
		Summary:     "Filtered summary",
		Description: "Aggregates the caller's transactions matching optional category, division, and date-range predicates.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func parseFilterQueryInput(input *FilterQueryInput) (service.TransactionQuery, error) {
	query := service.TransactionQuery{}

	if input.Category != "" {
		category := service.Category(input.Category)
		query.Category = &category
	}
	if input.Division != "" {
		division := service.Division(input.Division)
		query.Division = &division
	}
	if input.From != "" {
		from, err := parseQueryTime("from", input.From)
		if err != nil {
			return service.TransactionQuery{}, err
		}
		query.From = &from
	}
	if input.To != "" {
		to, err := parseQueryTime("to", input.To)
		if err != nil {
			return service.TransactionQuery{}, err
		}
		query.To = &to
	}

	return query, nil
}

func (h *FilterQueryHandler) handle(ctx context.Context, input *FilterQueryInput) (*FilterQueryOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := parseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	query, err := parseFilterQueryInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("filterSummaryMs")
	}
	summary, err := h.TransactionService.FilterSummary(ctx, ownerID, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to build filtered summary")
	}

	return &FilterQueryOutput{Body: summaryFromService(summary)}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-manager/internal/service"
)

// ConstantsInput is the Huma input for the constants endpoint. No parameters;
// the sets are the same for every caller.
type ConstantsInput struct{}

// ConstantsResponseBody is the response body for the constants endpoint.
type ConstantsResponseBody struct {
	Categories []string `json:"categories" doc:"Valid transaction categories"`
	Divisions  []string `json:"divisions" doc:"Valid cost-center divisions"`
}

// ConstantsOutput is the Huma output for the constants endpoint.
type ConstantsOutput struct {
	Body ConstantsResponseBody
}

// ConstantsHandler handles GET /v1/transaction/constants.
type ConstantsHandler struct{}

// NewConstantsHandler creates a new ConstantsHandler.
func NewConstantsHandler() *ConstantsHandler {
	return &ConstantsHandler{}
}

// Register registers the constants endpoint with the Huma API.
func (h *ConstantsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-constants",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/constants",
		Summary:     "Transaction constants",
		Description: "Returns the closed category and division sets clients populate their forms with.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ConstantsHandler) handle(_ context.Context, _ *ConstantsInput) (*ConstantsOutput, error) {
	categories := service.Categories()
	categoryNames := make([]string, len(categories))
	for i, category := range categories {
		categoryNames[i] = string(category)
	}

	divisions := service.Divisions()
	divisionNames := make([]string, len(divisions))
	for i, division := range divisions {
		divisionNames[i] = string(division)
	}

	return &ConstantsOutput{
		Body: ConstantsResponseBody{
			Categories: categoryNames,
			Divisions:  divisionNames,
		},
	}, nil
}

package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/service"
)

// AggregateExpensesInput is the Huma input for the category aggregate.
type AggregateExpensesInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer access token"`
}

// CategoryTotal is one group of the per-category aggregate.
type CategoryTotal struct {
	Category string `json:"category" doc:"Category name, case-sensitive"`
	Total    string `json:"total" doc:"Exact decimal sum of amounts"`
}

// AggregateExpensesResponseBody is the response body for the aggregate.
type AggregateExpensesResponseBody struct {
	Totals []CategoryTotal `json:"totals" doc:"Per-category totals, order unspecified"`
}

// AggregateExpensesOutput is the Huma output for the aggregate.
type AggregateExpensesOutput struct {
	Body AggregateExpensesResponseBody
}

// expenseAggregator is the interface for computing category totals.
type expenseAggregator interface {
	AggregateByCategory(ctx context.Context, ownerID string) ([]service.CategoryTotal, error)
}

// AggregateExpensesHandler handles GET /v1/expense/aggregate.
type AggregateExpensesHandler struct {
	ExpenseService expenseAggregator
	Identity       identity.Provider
}

// NewAggregateExpensesHandler creates a new AggregateExpensesHandler.
func NewAggregateExpensesHandler(svc expenseAggregator, provider identity.Provider) *AggregateExpensesHandler {
	return &AggregateExpensesHandler{ExpenseService: svc, Identity: provider}
}

// Register registers the aggregate endpoint with the Huma API.
func (h *AggregateExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "aggregate-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense/aggregate",
		Summary:     "Aggregate expenses by category",
		Description: "Returns the per-category sum of amounts over the authenticated user's expenses.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *AggregateExpensesHandler) handle(ctx context.Context, input *AggregateExpensesInput) (*AggregateExpensesOutput, error) {
	ownerID, err := resolveOwner(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	rows, err := h.ExpenseService.AggregateByCategory(ctx, ownerID)
	if err != nil {
		return nil, translateServiceError("aggregate expenses", err)
	}

	totals := make([]CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = CategoryTotal{
			Category: row.Category,
			Total:    row.Total.String(),
		}
	}

	return &AggregateExpensesOutput{Body: AggregateExpensesResponseBody{Totals: totals}}, nil
}

package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer access token"`
}

// ListExpensesResponseBody is the response body for listing expenses.
type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"All expenses of the caller, most recent first"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, ownerID string) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /v1/expense.
type ListExpensesHandler struct {
	ExpenseService expenseLister
	Identity       identity.Provider
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister, provider identity.Provider) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc, Identity: provider}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense",
		Summary:     "List expenses",
		Description: "Returns every expense of the authenticated user, most recent first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	ownerID, err := resolveOwner(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	rows, err := h.ExpenseService.ListExpenses(ctx, ownerID)
	if err != nil {
		return nil, translateServiceError("list expenses", err)
	}

	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = serviceExpenseToExpense(row)
	}

	return &ListExpensesOutput{Body: ListExpensesResponseBody{Expenses: converted}}, nil
}

package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/service"
)

// GetExpenseInput is the Huma input for fetching a single expense.
type GetExpenseInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer access token"`
	ID            int64  `path:"id" doc:"Expense ID"`
}

// GetExpenseOutput is the Huma output for fetching a single expense.
type GetExpenseOutput struct {
	Body Expense
}

// expenseGetter is the interface for fetching a single expense.
type expenseGetter interface {
	GetExpense(ctx context.Context, id int64, ownerID string) (*service.Expense, error)
}

// GetExpenseHandler handles GET /v1/expense/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
	Identity       identity.Provider
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter, provider identity.Provider) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc, Identity: provider}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expense/{id}",
		Summary:     "Get expense",
		Description: "Returns one expense of the authenticated user. Records of other users are reported as not found.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	ownerID, err := resolveOwner(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	row, err := h.ExpenseService.GetExpense(ctx, input.ID, ownerID)
	if err != nil {
		return nil, translateServiceError("get expense", err)
	}

	return &GetExpenseOutput{Body: serviceExpenseToExpense(*row)}, nil
}

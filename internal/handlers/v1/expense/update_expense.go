package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/service"
)

// UpdateExpenseBody is the request body for updating an expense. All mutable
// fields are replaced at once.
type UpdateExpenseBody struct {
	Description string `json:"description" required:"true" minLength:"1" doc:"What the money was spent on"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, strictly positive"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Free-form category"`
	Date        string `json:"date" required:"true" format:"date-time" doc:"RFC3339 expense date"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer access token"`
	ID            int64  `path:"id" doc:"Expense ID"`
	Body          UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for updating expenses.
type expenseUpdater interface {
	UpdateExpense(ctx context.Context, ownerID string, expense service.Expense) error
	GetExpense(ctx context.Context, id int64, ownerID string) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT /v1/expense/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
	Identity       identity.Provider
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater, provider identity.Provider) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc, Identity: provider}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/v1/expense/{id}",
		Summary:     "Update expense",
		Description: "Replaces the description, amount, category, and date of one expense of the authenticated user.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	ownerID, err := resolveOwner(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(input.Body.Date)
	if err != nil {
		return nil, err
	}

	err = h.ExpenseService.UpdateExpense(ctx, ownerID, service.Expense{
		ID:          input.ID,
		Description: input.Body.Description,
		Amount:      amount,
		Category:    input.Body.Category,
		Date:        date,
	})
	if err != nil {
		return nil, translateServiceError("update expense", err)
	}

	row, err := h.ExpenseService.GetExpense(ctx, input.ID, ownerID)
	if err != nil {
		return nil, translateServiceError("update expense", err)
	}

	return &UpdateExpenseOutput{Body: serviceExpenseToExpense(*row)}, nil
}

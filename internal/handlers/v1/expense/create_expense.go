package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/service"
)

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	Description string `json:"description" required:"true" minLength:"1" doc:"What the money was spent on"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, strictly positive"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Free-form category"`
	Date        string `json:"date,omitempty" format:"date-time" doc:"RFC3339 expense date, defaults to now"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer access token"`
	Body          CreateExpenseBody
}

// CreateExpenseResponse is the response body for creating an expense.
type CreateExpenseResponse struct {
	ID int64 `json:"id" doc:"Assigned expense ID"`
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body CreateExpenseResponse
}

// expenseCreator is the interface for adding expenses.
type expenseCreator interface {
	AddExpense(ctx context.Context, ownerID string, expense service.Expense) (int64, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
	Identity       identity.Provider
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator, provider identity.Provider) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc, Identity: provider}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create expense",
		Description:   "Records a new expense for the authenticated user.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
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

	id, err := h.ExpenseService.AddExpense(ctx, ownerID, service.Expense{
		Description: input.Body.Description,
		Amount:      amount,
		Category:    input.Body.Category,
		Date:        date,
	})
	if err != nil {
		return nil, translateServiceError("create expense", err)
	}

	return &CreateExpenseOutput{Body: CreateExpenseResponse{ID: id}}, nil
}

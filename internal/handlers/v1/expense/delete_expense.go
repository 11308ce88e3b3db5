package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerline/expense-server/internal/identity"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer access token"`
	ID            int64  `path:"id" doc:"Expense ID"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct{}

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	DeleteExpense(ctx context.Context, id int64, ownerID string) error
}

// DeleteExpenseHandler handles DELETE /v1/expense/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
	Identity       identity.Provider
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter, provider identity.Provider) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc, Identity: provider}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/v1/expense/{id}",
		Summary:       "Delete expense",
		Description:   "Deletes one expense of the authenticated user. Deleting a missing expense succeeds.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	ownerID, err := resolveOwner(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := h.ExpenseService.DeleteExpense(ctx, input.ID, ownerID); err != nil {
		return nil, translateServiceError("delete expense", err)
	}

	return &DeleteExpenseOutput{}, nil
}

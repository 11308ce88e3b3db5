package expense

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/service"
)

// Expense is the wire representation of an expense record. The owner is
// implied by the caller's credentials and never serialized.
type Expense struct {
	ID          int64  `json:"id" doc:"Assigned expense ID"`
	Description string `json:"description" doc:"What the money was spent on"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Category    string `json:"category" doc:"Free-form category"`
	Date        string `json:"date" format:"date-time" doc:"RFC3339 expense date"`
}

func serviceExpenseToExpense(e service.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.String(),
		Category:    e.Category,
		Date:        e.Date.Format(time.RFC3339),
	}
}

// resolveOwner turns the Authorization header into an opaque owner
// identifier. Any resolution failure is reported as 401 without detail.
func resolveOwner(ctx context.Context, provider identity.Provider, authorization string) (string, error) {
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", huma.NewError(http.StatusUnauthorized, "missing bearer token")
	}
	ownerID, err := provider.Resolve(ctx, strings.TrimSpace(token))
	if err != nil {
		return "", huma.NewError(http.StatusUnauthorized, "invalid credentials")
	}
	return ownerID, nil
}

// translateServiceError maps the service error taxonomy onto HTTP statuses:
// ValidationError -> 422, ErrNotFound -> 404, anything else -> 500.
func translateServiceError(op string, err error) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusUnprocessableEntity, validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "expense not found")
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+op, err)
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	return date, nil
}

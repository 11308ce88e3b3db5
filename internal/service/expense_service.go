package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ledgerline/expense-server/internal/storage"
	"github.com/ledgerline/expense-server/internal/storage/sqlconfig"
)

// ExpenseService mediates all access to expense records. Every operation
// takes the caller-resolved owner identity as an explicit parameter; owner
// fields embedded in input payloads are never trusted.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// AddExpense validates the expense, stamps the owner server-side, and
// persists it. A zero date defaults to the current time. Returns the
// assigned ID.
func (s *ExpenseService) AddExpense(ctx context.Context, ownerID string, expense Expense) (int64, error) {
	if err := validateExpense(expense); err != nil {
		return 0, err
	}

	date := expense.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	id, err := s.storage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    expense.Category,
		ExpenseDate: date,
		OwnerID:     ownerID,
	})
	if err != nil {
		return 0, &StorageError{Op: "insert expense", Err: err}
	}
	return id, nil
}

// ListExpenses returns every expense owned by ownerID, most recent first.
// An owner with no records gets an empty slice, not an error.
func (s *ExpenseService) ListExpenses(ctx context.Context, ownerID string) ([]Expense, error) {
	rows, err := s.storage.Expenses.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &StorageError{Op: "list expenses", Err: err}
	}

	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = storageExpenseToExpense(row)
	}
	return converted, nil
}

// GetExpense retrieves an expense only if it exists and belongs to ownerID;
// otherwise ErrNotFound.
func (s *ExpenseService) GetExpense(ctx context.Context, id int64, ownerID string) (*Expense, error) {
	row, err := s.storage.Expenses.FindOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "find expense", Err: err}
	}

	expense := storageExpenseToExpense(row)
	return &expense, nil
}

// UpdateExpense replaces the description, amount, category, and date of the
// owner's expense in place. ID and owner never change. A missing or foreign
// id fails with ErrNotFound.
func (s *ExpenseService) UpdateExpense(ctx context.Context, ownerID string, expense Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}

	rows, err := s.storage.Expenses.UpdateOwned(ctx, &sqlconfig.ExpenseUpdate{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    expense.Category,
		ExpenseDate: expense.Date,
		OwnerID:     ownerID,
	})
	if err != nil {
		return &StorageError{Op: "update expense", Err: err}
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes the owner's expense. A missing or foreign id is a
// silent no-op, so the operation is idempotent.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64, ownerID string) error {
	if err := s.storage.Expenses.DeleteOwned(ctx, id, ownerID); err != nil {
		return &StorageError{Op: "delete expense", Err: err}
	}
	return nil
}

// AggregateByCategory computes the exact decimal sum of amounts per category
// over the owner's expenses. Group order is unspecified.
func (s *ExpenseService) AggregateByCategory(ctx context.Context, ownerID string) ([]CategoryTotal, error) {
	rows, err := s.storage.Expenses.SumByCategory(ctx, ownerID)
	if err != nil {
		return nil, &StorageError{Op: "aggregate expenses", Err: err}
	}

	converted := make([]CategoryTotal, len(rows))
	for i, row := range rows {
		converted[i] = CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
		}
	}
	return converted, nil
}

func validateExpense(expense Expense) error {
	if strings.TrimSpace(expense.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if strings.TrimSpace(expense.Category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if expense.Amount.Sign() <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if !expense.Amount.Equal(expense.Amount.Truncate(2)) {
		return &ValidationError{Field: "amount", Reason: "must have at most two decimal places"}
	}
	return nil
}

func storageExpenseToExpense(row *sqlconfig.Expense) Expense {
	return Expense{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    row.Category,
		Date:        row.ExpenseDate,
		OwnerID:     row.OwnerID,
		CreatedAt:   row.CreatedAt,
	}
}

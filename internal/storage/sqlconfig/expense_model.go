package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense record.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	ExpenseDate time.Time
	OwnerID     string
	CreatedAt   time.Time
}

// ExpenseCreate is the input for creating a new expense. OwnerID is the
// caller-resolved identity, never a value taken from a request payload.
type ExpenseCreate struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	ExpenseDate time.Time
	OwnerID     string
}

// ExpenseUpdate replaces the mutable fields of an expense. ID and OwnerID
// select the row; they are never written.
type ExpenseUpdate struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	ExpenseDate time.Time
	OwnerID     string
}

// CategoryTotal is one group of the per-category aggregate.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// IExpensesTable defines the interface for expense storage operations.
// Every operation is scoped to a single owner; rows belonging to other
// owners are invisible to it.
//
//go:generate mockery --name IExpensesTable --output mock_IExpensesTable.go
type IExpensesTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Expense, error)
	FindOwned(ctx context.Context, id int64, ownerID string) (*Expense, error)
	UpdateOwned(ctx context.Context, update *ExpenseUpdate) (int64, error)
	DeleteOwned(ctx context.Context, id int64, ownerID string) error
	SumByCategory(ctx context.Context, ownerID string) ([]*CategoryTotal, error)
}

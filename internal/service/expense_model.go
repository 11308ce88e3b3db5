package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	OwnerID     string
	CreatedAt   time.Time
}

// CategoryTotal is the per-category sum of amounts for one owner.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

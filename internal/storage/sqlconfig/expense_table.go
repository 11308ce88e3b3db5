package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IExpensesTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable creates an ExpensesTable for the given database.
func NewExpensesTable(db *sql.DB) ExpensesTable {
	return ExpensesTable{exec: bob.NewDB(db)}
}

// expenseRow mirrors the expenses table layout for scanning.
type expenseRow struct {
	ID          int64           `db:"id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	ExpenseDate time.Time       `db:"expense_date"`
	OwnerID     string          `db:"owner_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// categoryTotalRow mirrors one group of the aggregate query.
type categoryTotalRow struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// Insert creates a new expense and returns its generated ID.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (int64, error) {
	q := psql.Insert(
		im.Into("expenses", "description", "amount", "category", "expense_date", "owner_id"),
		im.Values(psql.Arg(
			create.Description,
			create.Amount,
			create.Category,
			create.ExpenseDate,
			create.OwnerID,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// ListByOwner returns every expense for the owner, most recent first.
func (t *ExpensesTable) ListByOwner(ctx context.Context, ownerID string) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns("id", "description", "amount", "category", "expense_date", "owner_id", "created_at"),
		sm.From("expenses"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("expense_date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*expenseRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Expense, len(rows))
	for i, row := range rows {
		result[i] = rowToExpense(row)
	}
	return result, nil
}

// FindOwned retrieves an expense only if it exists and belongs to the owner.
// The id and owner filters run as one query so a foreign row is
// indistinguishable from a missing one. Returns sql.ErrNoRows otherwise.
func (t *ExpensesTable) FindOwned(ctx context.Context, id int64, ownerID string) (*Expense, error) {
	q := psql.Select(
		sm.Columns("id", "description", "amount", "category", "expense_date", "owner_id", "created_at"),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*expenseRow]())
	if err != nil {
		return nil, err
	}
	return rowToExpense(row), nil
}

// UpdateOwned replaces the mutable columns of the owner's expense and
// returns the number of rows written (0 when the row is missing or foreign).
func (t *ExpensesTable) UpdateOwned(ctx context.Context, update *ExpenseUpdate) (int64, error) {
	q := psql.Update(
		um.Table("expenses"),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("expense_date").ToArg(update.ExpenseDate),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(update.OwnerID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteOwned removes the owner's expense. Deleting a missing or foreign
// row affects nothing and is not an error.
func (t *ExpensesTable) DeleteOwned(ctx context.Context, id int64, ownerID string) error {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// SumByCategory computes SUM(amount) per category over the owner's rows.
// NUMERIC arithmetic keeps the totals exact.
func (t *ExpensesTable) SumByCategory(ctx context.Context, ownerID string) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns("category", psql.Raw("SUM(amount) AS total")),
		sm.From("expenses"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.GroupBy("category"),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*categoryTotalRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*CategoryTotal, len(rows))
	for i, row := range rows {
		result[i] = &CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
		}
	}
	return result, nil
}

func rowToExpense(row *expenseRow) *Expense {
	return &Expense{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    row.Category,
		ExpenseDate: row.ExpenseDate,
		OwnerID:     row.OwnerID,
		CreatedAt:   row.CreatedAt,
	}
}

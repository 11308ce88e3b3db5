package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/expense-server/internal/config"
	"github.com/ledgerline/expense-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB       *sql.DB
	Expenses sqlconfig.IExpensesTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
	}

	table := sqlconfig.NewExpensesTable(db)
	return &Storage{
		DB:       db,
		Expenses: &table,
	}
}

// Ping reports whether the database is reachable. Used by the status endpoint.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

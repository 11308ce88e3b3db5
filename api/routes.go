package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/expense-server/internal/handlers/v1/expense"
	"github.com/ledgerline/expense-server/internal/handlers/v1/status"
	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/logging"
	"github.com/ledgerline/expense-server/internal/service"
	"github.com/ledgerline/expense-server/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Identity identity.Provider
	Storage  *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-server", "1.0.0"))
	expense.NewCreateExpenseHandler(r.Service.Expense, r.Identity).Register(humaAPI)
	expense.NewListExpensesHandler(r.Service.Expense, r.Identity).Register(humaAPI)
	expense.NewGetExpenseHandler(r.Service.Expense, r.Identity).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Service.Expense, r.Identity).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Service.Expense, r.Identity).Register(humaAPI)
	expense.NewAggregateExpensesHandler(r.Service.Expense, r.Identity).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

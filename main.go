package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/expense-server/api"
	"github.com/ledgerline/expense-server/internal/config"
	"github.com/ledgerline/expense-server/internal/identity"
	"github.com/ledgerline/expense-server/internal/logging"
	"github.com/ledgerline/expense-server/internal/service"
	"github.com/ledgerline/expense-server/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)
	provider := identity.NewJWTProvider(envConfig.JWTSecret)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Identity: provider,
		Storage:  dbStorage,
	}
	httpRest.Serve()
}

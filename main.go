package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/trustbank/ledger-server/api"
	"github.com/trustbank/ledger-server/internal/config"
	"github.com/trustbank/ledger-server/internal/logging"
	"github.com/trustbank/ledger-server/internal/operator"
	"github.com/trustbank/ledger-server/internal/service"
	"github.com/trustbank/ledger-server/internal/storage/postgres"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := postgres.Open(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("postgres.Open")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}

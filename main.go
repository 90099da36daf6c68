package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-manager/api"
	"github.com/carson-networks/money-manager/internal/config"
	"github.com/carson-networks/money-manager/internal/logging"
	"github.com/carson-networks/money-manager/internal/operator"
	"github.com/carson-networks/money-manager/internal/service"
	"github.com/carson-networks/money-manager/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("money-manager starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	loc, err := envConfig.Location()
	if err != nil {
		logrus.WithError(err).Fatal("config.Location")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, loc)

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

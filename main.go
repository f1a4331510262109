package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage, envConfig.JWTSecret, envConfig.TokenLifetime)

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

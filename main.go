package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/view"
)

const operatorQueueSize = 64

func main() {
	logger := logging.SetupLogging()
	logger.Info("ledger-server starting")

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.WithError(err).Fatal("config.LoadDotEnv")
		return
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logger.SetLevel(envConfig.LogLevel)

	formatter, err := view.NewFormatter(envConfig.Currency)
	if err != nil {
		logger.WithError(err).Fatal("view.NewFormatter")
		return
	}

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledgerStore := ledger.Open(ctx, store.KeyValues, logger, envConfig.StorageKey)

	delegator := operator.NewOperatorDelegator(ledgerStore, operatorQueueSize)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:    logger,
		Port:      envConfig.Port,
		Ledger:    ledgerStore,
		Operator:  delegator,
		Service:   service.NewService(ledgerStore),
		Formatter: formatter,
	}
	httpRest.Serve(ctx)

	logger.WithFields(logrus.Fields{
		"transactionCount": ledgerStore.Len(),
	}).Info("ledger-server stopped")
}

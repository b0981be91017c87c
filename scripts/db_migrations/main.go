package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func main() {
	if err := server_config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("LoadDotEnv")
		return
	}

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbPath := env.SQLitePath()
	db, err := sqlconfig.Open(dbPath)
	if err != nil {
		logrus.WithError(err).Fatal("sqlconfig.Open")
		return
	}
	defer db.Close()

	status, err := sqlconfig.Migrate(db)
	if err != nil {
		logrus.WithError(err).Fatal("sqlconfig.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"database":             dbPath,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}

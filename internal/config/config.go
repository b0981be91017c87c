package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port           string
	StorageBackend string
	DataDir        string
	SQLiteFile     string
	StorageKey     string
	Currency       string
	LogLevel       logrus.Level
}

// SQLitePath is the SQLite database location, relative names resolve inside DataDir.
func (c *Config) SQLitePath() string {
	if filepath.IsAbs(c.SQLiteFile) {
		return c.SQLiteFile
	}
	return filepath.Join(c.DataDir, c.SQLiteFile)
}

// LoadDotEnv loads variables from a .env file in the working directory if one exists.
// Variables already present in the environment win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults keep all data in ./data next to the binary.
	env := Config{
		Port:           "9446",
		StorageBackend: BackendFile,
		DataDir:        "data",
		SQLiteFile:     "ledger.db",
		StorageKey:     "transactions",
		Currency:       "INR",
		LogLevel:       logrus.InfoLevel,
	}

	envPort := os.Getenv("LEDGER_PORT")
	envStorageBackend := os.Getenv("LEDGER_STORAGE_BACKEND")
	envDataDir := os.Getenv("LEDGER_DATA_DIR")
	envSQLiteFile := os.Getenv("LEDGER_SQLITE_FILE")
	envStorageKey := os.Getenv("LEDGER_STORAGE_KEY")
	envCurrency := os.Getenv("LEDGER_CURRENCY")
	envLogLevel := os.Getenv("LEDGER_LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envStorageBackend) != 0 {
		env.StorageBackend = envStorageBackend
	}

	if len(envDataDir) != 0 {
		env.DataDir = envDataDir
	}

	if len(envSQLiteFile) != 0 {
		env.SQLiteFile = envSQLiteFile
	}

	if len(envStorageKey) != 0 {
		env.StorageKey = envStorageKey
	}

	if len(envCurrency) != 0 {
		env.Currency = envCurrency
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("LEDGER_LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	switch env.StorageBackend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return nil, fmt.Errorf("LEDGER_STORAGE_BACKEND: unknown backend %q", env.StorageBackend)
	}

	return &env, nil
}

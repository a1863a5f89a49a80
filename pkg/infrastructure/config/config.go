package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/vsinha/inventory/pkg/infrastructure/config/env"
)

var cfg *config

type config struct {
	Logger  Logger
	Catalog Catalog
}

// Load reads the configuration from the environment. When APP_ENV=local the
// given .env files (default ".env") are loaded first.
func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return fmt.Errorf("%s Catalog: %w", op, err)
	}

	cfg = &config{
		Logger:  loggerCfg,
		Catalog: catalogCfg,
	}

	return nil
}

// C returns the loaded configuration; nil before Load
func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}

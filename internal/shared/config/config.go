package config

import (
	"fmt"
	"os"
	"planets-catalog/internal/shared/errors"
	"planets-catalog/internal/shared/utils"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Logging     LoggingConfig
	Catalog     CatalogConfig
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type CatalogConfig struct {
	SystemName   string
	DistanceFrom string
	DistanceTo   string
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
	}

	config, err := Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	environment := utils.GetEnv("ENVIRONMENT", "development")

	config := &Config{
		Environment: environment,
		Logging:     loadLoggingConfig(environment),
		Catalog:     loadCatalogConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadLoggingConfig(environment string) LoggingConfig {
	return LoggingConfig{
		Level:      strings.ToLower(utils.GetEnv("LOG_LEVEL", "info")),
		JSONFormat: environment == "production",
	}
}

func loadCatalogConfig() CatalogConfig {
	return CatalogConfig{
		SystemName:   utils.GetEnv("CATALOG_SYSTEM_NAME", ""),
		DistanceFrom: utils.GetEnv("CATALOG_DISTANCE_FROM", "Earth"),
		DistanceTo:   utils.GetEnv("CATALOG_DISTANCE_TO", "Uranus"),
	}
}

// Validate checks values that cannot be defaulted away
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.InvalidConfigf("unknown log level %q", c.Logging.Level)
	}

	if strings.TrimSpace(c.Catalog.DistanceFrom) == "" || strings.TrimSpace(c.Catalog.DistanceTo) == "" {
		return errors.InvalidConfigf("distance reference planets must not be empty")
	}

	return nil
}

package config

import (
	"os"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	DrugInfo DrugInfoConfig
}

type ServerConfig struct {
	Port        string
	Environment string
}

type DatabaseConfig struct {
	Path          string
	MigrationsDir string
}

type DrugInfoConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	drugInfoTimeout, err := time.ParseDuration(getEnv("DRUG_INFO_TIMEOUT", "10s"))
	if err != nil {
		drugInfoTimeout = 10 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DATABASE_PATH", "./data/medtracker.db"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", ""),
		},
		DrugInfo: DrugInfoConfig{
			BaseURL: getEnv("DRUG_INFO_BASE_URL", "https://api.fda.gov/drug/label.json"),
			Timeout: drugInfoTimeout,
		},
	}

	if cfg.Database.Path == "" {
		return nil, ErrMissingDatabasePath
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

var ErrMissingDatabasePath = &ConfigError{"DATABASE_PATH must not be empty"}

type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

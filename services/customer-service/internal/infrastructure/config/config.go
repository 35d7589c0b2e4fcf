package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/pkg/postgres"
)

type Config struct {
	HTTPPort      int
	DB            postgres.Config
	Log           observability.LogConfig
	MigrationsDir string
	ServiceName   string
}

func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "banking"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "banking_customers"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		MigrationsDir: getEnv("MIGRATIONS_DIR", "services/customer-service/migrations"),
		ServiceName:   "customer-service",
	}
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

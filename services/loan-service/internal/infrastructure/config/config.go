package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	"github.com/PatriickRM/loan-banking-system/pkg/postgres"
)

type Config struct {
	HTTPPort           int
	DB                 postgres.Config
	Kafka              kafka.Config
	Log                observability.LogConfig
	CustomerServiceURL string
	MigrationsDir      string
	ServiceName        string
}

func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8081),
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "banking"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "banking_loans"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Kafka: kafka.Config{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "loan-service"),
		},
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CustomerServiceURL: getEnv("CUSTOMER_SERVICE_URL", "http://localhost:8080"),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "services/loan-service/migrations"),
		ServiceName:        "loan-service",
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

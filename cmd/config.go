package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	HTTPPort               string
	DBDriver               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DatabaseURL            string
	RabbitMQURL            string
	RabbitMQExchange       string
	UploadDir              string
	DeliveryDigestSchedule string
	StatisticsSchedule     string
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	return Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBDriver:               envOr("DB_DRIVER", DriverPostgres),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       envOr("RABBITMQ_EXCHANGE", "flowerorder.orders"),
		UploadDir:              envOr("UPLOAD_DIR", "uploads"),
		DeliveryDigestSchedule: envOr("DELIVERY_DIGEST_SCHEDULE", "0 0 7 * * *"),
		StatisticsSchedule:     envOr("STATISTICS_SCHEDULE", "0 0 * * * *"),
	}, nil
}

// DSN builds the connection string for the configured driver. For postgres a
// DATABASE_URL takes precedence over the individual DB_* keys.
func (c Config) DSN() (string, error) {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL != "" {
			dsn, err := pq.ParseURL(c.DatabaseURL)
			if err != nil {
				return "", fmt.Errorf("parse DATABASE_URL: %w", err)
			}
			return dsn, nil
		}
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, port, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode), nil
	case DriverMySQL:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName), nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

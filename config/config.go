package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the service.
// It is loaded once in main and passed explicitly to the components
// that need it; there is no package-level singleton.
type Config struct {
	App struct {
		Env  string // development | production
		Port string
	}
	Mongo struct {
		URI            string
		Database       string
		ConnectTimeout time.Duration
	}
	SMTP struct {
		Host string
		Port int
		User string
		Pass string
		From string // optional, falls back to User then to the recipient
	}
}

// Load reads configuration from the environment, optionally seeded by a
// .env file. Missing SMTP settings are not an error: notification email
// is an optional feature and the mailer treats an empty host/user/pass
// as "not configured".
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on system environment variables")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8000")

	cfg.Mongo.URI = getEnv("DATABASE_URL", "mongodb://localhost:27017")
	cfg.Mongo.Database = getEnv("DATABASE_NAME", "playerpage")

	timeoutSec, err := getEnvAsInt("DATABASE_CONNECT_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_CONNECT_TIMEOUT_SECONDS: %w", err)
	}
	cfg.Mongo.ConnectTimeout = time.Duration(timeoutSec) * time.Second

	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.User = getEnv("SMTP_USER", "")
	cfg.SMTP.Pass = getEnv("SMTP_PASS", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")
	cfg.SMTP.Port, err = getEnvAsInt("SMTP_PORT", 587)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return cfg, nil
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

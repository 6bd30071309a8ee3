package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the school service.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	KafkaBrokers []string
	EventTopic   string

	// Admin panel
	AdminRootPath      string
	AdminSessionSecret string
	AdminSessionMaxAge time.Duration
	SuperadminEmail    string
	SuperadminPassword string

	// Payment gateway (Midtrans Snap)
	MidtransServerKey  string
	MidtransProduction bool

	// Outbound email
	SendgridAPIKey string
	FromEmail      string
	AdminEmail     string

	// Site client data source: "live" or "mock"
	DataSource  string
	SiteBaseURL string
}

// LoadConfig reads configuration from the environment (and .env if present).
// It fails when a setting the service cannot run without is missing; in
// particular the admin cookie-signing secret must never fall back to a
// hardcoded default.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		KafkaBrokers:       splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
		EventTopic:         getEnv("EVENT_TOPIC", "school.events"),
		AdminRootPath:      getEnv("ADMIN_ROOT_PATH", "/admin"),
		AdminSessionSecret: os.Getenv("ADMIN_SESSION_SECRET"),
		AdminSessionMaxAge: getDuration("ADMIN_SESSION_MAX_AGE", 24*time.Hour),
		SuperadminEmail:    getEnv("SUPERADMIN_EMAIL", "admin@codesmartng.com"),
		SuperadminPassword: os.Getenv("SUPERADMIN_PASSWORD"),
		MidtransServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransProduction: getBool("MIDTRANS_PRODUCTION", false),
		SendgridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		FromEmail:          getEnv("FROM_EMAIL", "noreply@codesmartng.com"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@codesmartng.com"),
		DataSource:         getEnv("DATA_SOURCE", "live"),
		SiteBaseURL:        getEnv("SITE_BASE_URL", "http://localhost:8080/api"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminSessionSecret == "" {
		return nil, fmt.Errorf("ADMIN_SESSION_SECRET is required")
	}
	if cfg.DataSource != "live" && cfg.DataSource != "mock" {
		return nil, fmt.Errorf("DATA_SOURCE must be \"live\" or \"mock\", got %q", cfg.DataSource)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if part := s[start:i]; part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}

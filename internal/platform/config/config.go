package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	DBMaxConns     int32
	DBMinConns     int32

	// HTTP edge
	RateLimit          string
	ReadRateLimit      string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	// Ledger events, disabled when RabbitMQURL is empty
	RabbitMQURL      string
	RabbitMQExchange string

	// Product analytics, disabled when PosthogAPIKey is empty
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 0)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("READ_RATE_LIMIT", "1200-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "bank.operations")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Environment variables override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.DBMaxConns = v.GetInt32("DB_MAX_CONNS")
	cfg.DBMinConns = v.GetInt32("DB_MIN_CONNS")
	if cfg.DBMinConns > cfg.DBMaxConns && cfg.DBMaxConns > 0 {
		log.Printf("Warning: DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d). Clamping.\n", cfg.DBMinConns, cfg.DBMaxConns)
		cfg.DBMinConns = cfg.DBMaxConns
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.ReadRateLimit = v.GetString("READ_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	// Load shutdown timeout (e.g., "10s", "1m")
	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout.String())
	}
	cfg.ShutdownTimeout = shutdownTimeout

	cfg.RabbitMQURL = v.GetString("RABBITMQ_URL")
	cfg.RabbitMQExchange = v.GetString("RABBITMQ_EXCHANGE")
	if cfg.RabbitMQURL == "" {
		log.Println("Warning: RABBITMQ_URL not set. Ledger events will not be published.")
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

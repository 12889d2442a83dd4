package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Document store
	MongoURL      string
	MongoDatabase string
	QueryTimeout  time.Duration

	// Query shaping
	PageSize    int // invoices table page size
	LatestLimit int // dashboard "latest invoices" card size
	MaxPageSize int
	CacheTTL    time.Duration

	// Observability
	OTLPEndpoint string

	// Dev mode
	SeedEnabled bool // SEED_ENABLED=true exposes POST /v1/seed
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MongoURL:      getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "finboard"),
		QueryTimeout:  getEnvDuration("QUERY_TIMEOUT", 10*time.Second),

		PageSize:    getEnvInt("PAGE_SIZE", 6),
		LatestLimit: getEnvInt("LATEST_LIMIT", 5),
		MaxPageSize: getEnvInt("MAX_PAGE_SIZE", 100),
		CacheTTL:    getEnvDuration("CACHE_TTL", 30*time.Second),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		SeedEnabled: getEnv("SEED_ENABLED", "true") == "true",
	}
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

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

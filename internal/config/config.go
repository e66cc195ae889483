package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Alpaca API. Trading always targets the paper endpoint.
	AlpacaKeyID     string
	AlpacaSecretKey string
	AlpacaBaseURL   string
	AlpacaDataURL   string

	HTTPTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AlpacaKeyID:     getEnv("ALPACA_PAPER_API_KEY", ""),
		AlpacaSecretKey: getEnv("ALPACA_PAPER_API_SECRET", ""),
		AlpacaBaseURL:   getEnv("ALPACA_BASE_URL", "https://paper-api.alpaca.markets"),
		AlpacaDataURL:   getEnv("ALPACA_DATA_URL", "https://data.alpaca.markets"),
		HTTPTimeout:     getEnvDuration("HTTP_TIMEOUT_MS", 10000) * time.Millisecond,
	}

	// Validate required fields
	if cfg.AlpacaKeyID == "" || cfg.AlpacaSecretKey == "" {
		return nil, fmt.Errorf("ALPACA_PAPER_API_KEY and ALPACA_PAPER_API_SECRET must be set")
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue int64) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(defaultValue)
}

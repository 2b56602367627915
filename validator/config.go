package validator

import (
	"os"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config is the configuration for the validator application.
type Config struct {
	// HTTPAddr is the listen address for the HTTP adapter.
	HTTPAddr string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// DefaultCardLength is the total length used when a generate request
	// does not specify one.
	DefaultCardLength int
	// MetricsEnabled toggles the /metrics endpoint.
	MetricsEnabled bool
	// MetricsNamespace prefixes all metric names.
	MetricsNamespace string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:          "localhost:9090",
		LogLevel:          "info",
		DefaultCardLength: DefaultLength,
		MetricsEnabled:    true,
		MetricsNamespace:  "cardnum",
	}
}

// ConfigFromEnv loads configuration from environment variables, reading an
// optional .env file from the working directory first.
func ConfigFromEnv() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	return &Config{
		HTTPAddr:          env.GetString("HTTP_ADDR", "localhost:9090"),
		LogLevel:          env.GetString("LOG_LEVEL", "info"),
		DefaultCardLength: env.GetInt("DEFAULT_CARD_LENGTH", DefaultLength),
		MetricsEnabled:    env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace:  env.GetString("METRICS_NAMESPACE", "cardnum"),
	}
}

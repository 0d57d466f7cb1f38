package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Explanation providers.
const (
	ProviderNative = "native"
	ProviderGemini = "gemini"
)

// Config holds runtime configuration for the API and CLI entry points. All
// values come from the environment with sensible defaults.
type Config struct {
	// HTTP server
	Port string

	// Logging
	LogLevel string

	// Explanation override
	ExplainProvider string
	ExplainModel    string
	ExplainTimeout  time.Duration
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ExplainProvider: getEnv("EXPLAIN_PROVIDER", ProviderNative),
		ExplainModel:    getEnv("EXPLAIN_MODEL", ""),
		ExplainTimeout:  getEnvDuration("EXPLAIN_TIMEOUT", 15*time.Second),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.ExplainProvider {
	case ProviderNative, ProviderGemini:
	default:
		errs = append(errs, fmt.Sprintf("invalid explain provider '%s': must be one of [%s %s]",
			c.ExplainProvider, ProviderNative, ProviderGemini))
	}

	if c.ExplainTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid explain timeout %v: must be at least 1 second", c.ExplainTimeout))
	} else if c.ExplainTimeout > 2*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid explain timeout %v: must be at most 2 minutes", c.ExplainTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

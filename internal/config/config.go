// Package config loads client settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bucketbudget/internal/api"
	"bucketbudget/internal/core"
)

type Config struct {
	// Connection
	ServerURL string
	Token     string
	Provider  string

	// Login credentials (never persisted by this module)
	Identifier string
	Password   string

	// Refresh
	Month            string
	TransactionLimit int
	RecentLimit      int
	TrendMonths      int

	// Transport
	HTTPTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerURL: getEnv("BUCKET_SERVER_URL", ""),
		Token:     getEnv("BUCKET_TOKEN", ""),
		Provider:  getEnv("BUCKET_PROVIDER", api.BucketBudget.Name),

		Identifier: getEnv("BUCKET_IDENTIFIER", ""),
		Password:   getEnv("BUCKET_PASSWORD", ""),

		Month:            getEnv("BUCKET_MONTH", string(core.CurrentMonth())),
		TransactionLimit: getEnvInt("BUCKET_TX_LIMIT", 200),
		RecentLimit:      getEnvInt("BUCKET_DASHBOARD_TX_LIMIT", 12),
		TrendMonths:      getEnvInt("BUCKET_TREND_MONTHS", 6),

		HTTPTimeout: getEnvDuration("BUCKET_HTTP_TIMEOUT", 30*time.Second),
	}
}

// Validate checks the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.ServerURL) == "" {
		errs = append(errs, "BUCKET_SERVER_URL must be set")
	}

	if _, ok := api.ProviderByName(c.Provider); !ok {
		errs = append(errs, fmt.Sprintf("invalid provider '%s': must be one of %v", c.Provider, api.ProviderNames()))
	}

	if _, err := core.ParseMonth(c.Month); err != nil {
		errs = append(errs, fmt.Sprintf("invalid month '%s': must be yyyy-MM", c.Month))
	}

	if c.TransactionLimit < 1 {
		errs = append(errs, fmt.Sprintf("invalid transaction limit %d: must be positive", c.TransactionLimit))
	}
	if c.RecentLimit < 1 {
		errs = append(errs, fmt.Sprintf("invalid dashboard transaction limit %d: must be positive", c.RecentLimit))
	}
	if c.TrendMonths < 1 {
		errs = append(errs, fmt.Sprintf("invalid trend months %d: must be positive", c.TrendMonths))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("invalid HTTP timeout %v: must be positive", c.HTTPTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ProviderConfig resolves the configured provider. Call after Validate.
func (c *Config) ProviderConfig() api.Provider {
	p, ok := api.ProviderByName(c.Provider)
	if !ok {
		return api.BucketBudget
	}
	return p
}

// Connection builds the connection value handed to every client call.
func (c *Config) Connection() api.Connection {
	return api.Connection{
		ServerURL: c.ServerURL,
		Token:     c.Token,
		Provider:  c.ProviderConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

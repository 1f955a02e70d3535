package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the admin client reads from the environment.
// The API endpoint falls back to the local development server.
type Config struct {
	Env string `env:"BOOKHUB_ENV" default:"development"`

	// API endpoint, read once at startup.
	APIBaseURL  string        `env:"BOOKHUB_API_URL" default:"http://localhost:8084"`
	HTTPTimeout time.Duration `env:"BOOKHUB_HTTP_TIMEOUT" default:"10s"`

	// Client-side request pacing; 0 disables the limiter.
	RateLimitPerSecond float64 `env:"BOOKHUB_RATE_LIMIT" default:"0"`
	RateLimitBurst     int     `env:"BOOKHUB_RATE_BURST" default:"5"`

	// Where the bearer token lives: "keyring" or "file".
	CredentialStore string `env:"BOOKHUB_CRED_STORE" default:"keyring"`

	// Navigation history state file; empty disables persistence.
	NavStatePath string `env:"BOOKHUB_NAV_STATE"`

	// Dev stub server listen port (cmd/devstub only).
	StubPort int `env:"BOOKHUB_STUB_PORT" default:"8084"`
}

// LoadConfig loads configuration from environment variables, with a .env file
// as the optional source.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		// Missing .env is fine, system env vars still apply.
		fmt.Printf("Warning: could not read .env file: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.Env, "BOOKHUB_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.APIBaseURL, "BOOKHUB_API_URL", "http://localhost:8084"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.HTTPTimeout, "BOOKHUB_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvFloat(&config.RateLimitPerSecond, "BOOKHUB_RATE_LIMIT", 0); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitBurst, "BOOKHUB_RATE_BURST", 5); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.CredentialStore, "BOOKHUB_CRED_STORE", "keyring"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.NavStatePath, "BOOKHUB_NAV_STATE", ""); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.StubPort, "BOOKHUB_STUB_PORT", 8084); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate performs validation on the loaded configuration.
func (c *Config) Validate() error {
	var errors []string

	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		errors = append(errors, "BOOKHUB_API_URL must be an http(s) origin")
	}
	if c.CredentialStore != "keyring" && c.CredentialStore != "file" {
		errors = append(errors, "BOOKHUB_CRED_STORE must be one of: keyring, file")
	}
	if c.RateLimitPerSecond < 0 {
		errors = append(errors, "BOOKHUB_RATE_LIMIT must not be negative")
	}
	if c.StubPort < 1 || c.StubPort > 65535 {
		errors = append(errors, "BOOKHUB_STUB_PORT must be between 1 and 65535")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// IsDevelopment returns true if the client is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvFloat(target *float64, key string, defaultValue float64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOOKHUB_ENV", "")
	t.Setenv("BOOKHUB_API_URL", "")
	t.Setenv("BOOKHUB_HTTP_TIMEOUT", "")
	t.Setenv("BOOKHUB_RATE_LIMIT", "")
	t.Setenv("BOOKHUB_CRED_STORE", "")
	t.Setenv("BOOKHUB_STUB_PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://localhost:8084", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "keyring", cfg.CredentialStore)
	assert.Empty(t, cfg.NavStatePath)
	assert.Equal(t, 8084, cfg.StubPort)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BOOKHUB_ENV", "production")
	t.Setenv("BOOKHUB_API_URL", "https://api.bookhub.example")
	t.Setenv("BOOKHUB_HTTP_TIMEOUT", "30s")
	t.Setenv("BOOKHUB_RATE_LIMIT", "2.5")
	t.Setenv("BOOKHUB_RATE_BURST", "10")
	t.Setenv("BOOKHUB_CRED_STORE", "file")
	t.Setenv("BOOKHUB_NAV_STATE", "/tmp/nav.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.bookhub.example", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "file", cfg.CredentialStore)
	assert.Equal(t, "/tmp/nav.json", cfg.NavStatePath)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigBadValues(t *testing.T) {
	t.Setenv("BOOKHUB_HTTP_TIMEOUT", "soon")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("BOOKHUB_HTTP_TIMEOUT", "")
	t.Setenv("BOOKHUB_STUB_PORT", "not-a-port")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad url scheme", func(c *Config) { c.APIBaseURL = "localhost:8084" }, true},
		{"bad store", func(c *Config) { c.CredentialStore = "vault" }, true},
		{"negative rate", func(c *Config) { c.RateLimitPerSecond = -1 }, true},
		{"bad port", func(c *Config) { c.StubPort = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Env:             "development",
				APIBaseURL:      "http://localhost:8084",
				CredentialStore: "keyring",
				StubPort:        8084,
			}
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

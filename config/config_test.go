package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 1200, cfg.Image.MaxWidth)
	assert.InDelta(t, 0.7, cfg.Image.Quality, 1e-9)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 5, cfg.RateLimit.MessagesPerMinute)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://site.example.com, https://admin.example.com")
	t.Setenv("IMAGE_MAX_WIDTH", "800")
	t.Setenv("IMAGE_QUALITY", "0.5")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://site.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 800, cfg.Image.MaxWidth)
	assert.InDelta(t, 0.5, cfg.Image.Quality, 1e-9)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("IMAGE_MAX_WIDTH", "wide")
	t.Setenv("IMAGE_QUALITY", "high")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Image.MaxWidth)
	assert.InDelta(t, 0.7, cfg.Image.Quality, 1e-9)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Firebase: FirebaseConfig{CredentialsPath: "/tmp/creds.json"},
			Admin:    AdminConfig{Email: "owner@example.com"},
			Image:    ImageConfig{MaxWidth: 1200, Quality: 0.7},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT"},
		{"missing credentials", func(c *Config) { c.Firebase.CredentialsPath = "" }, "FIREBASE_CREDENTIALS_PATH"},
		{"missing admin email", func(c *Config) { c.Admin.Email = "" }, "ADMIN_EMAIL"},
		{"zero max width", func(c *Config) { c.Image.MaxWidth = 0 }, "IMAGE_MAX_WIDTH"},
		{"quality above one", func(c *Config) { c.Image.Quality = 1.5 }, "IMAGE_QUALITY"},
		{"zero quality", func(c *Config) { c.Image.Quality = 0 }, "IMAGE_QUALITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

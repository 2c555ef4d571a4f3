package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("APIFY_API_TOKEN", "apify-token")
	t.Setenv("DATABASE_URL", "postgres://localhost/leads")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "https://api.apify.com", cfg.ApifyBaseURL)
	assert.Equal(t, "gem-key", cfg.GeminiAPIKey)
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	cases := []struct {
		name    string
		missing string
	}{
		{"gemini key", "GEMINI_API_KEY"},
		{"apify token", "APIFY_API_TOKEN"},
		{"database url", "DATABASE_URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.missing, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.missing)
		})
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APIFY_BASE_URL", "http://localhost:4321")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "http://localhost:4321", cfg.ApifyBaseURL)
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("google provider with key", func(t *testing.T) {
		t.Setenv("GEMINI_PROVIDER", "google")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
		t.Setenv("GEMINI_MAX_TURNS", "7")
		t.Setenv("GEMINI_WORKDIR", "/tmp")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "google", cfg.Provider)
		assert.Equal(t, "test-key", cfg.GoogleKey)
		assert.Equal(t, "gemini-2.5-pro", cfg.Model)
		assert.Equal(t, 7, cfg.MaxTurns)
		assert.Equal(t, "/tmp", cfg.Workdir)
	})

	t.Run("defaults to google provider", func(t *testing.T) {
		t.Setenv("GEMINI_PROVIDER", "")
		t.Setenv("GEMINI_API_KEY", "test-key")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "google", cfg.Provider)
		assert.Equal(t, 50, cfg.MaxTurns)
	})

	t.Run("missing key for selected provider fails", func(t *testing.T) {
		t.Setenv("GEMINI_PROVIDER", "anthropic")
		t.Setenv("ANTHROPIC_API_KEY", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		t.Setenv("GEMINI_PROVIDER", "cohere")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})

	t.Run("malformed max turns falls back to default", func(t *testing.T) {
		t.Setenv("GEMINI_PROVIDER", "google")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MAX_TURNS", "not-a-number")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.MaxTurns)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("rejects non-positive max turns", func(t *testing.T) {
		cfg := &Config{Provider: "google", GoogleKey: "k", MaxTurns: 0}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_MAX_TURNS")
	})
}

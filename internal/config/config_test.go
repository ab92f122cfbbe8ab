package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nearby-restaurants/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Run("defaults from environment", func(t *testing.T) {
		t.Setenv("GOOGLE_PLACE_API_KEY", "google-key")
		t.Setenv("CLIENT_API_KEY", "client-key")

		cfg, err := config.LoadFile("")
		require.NoError(t, err)

		assert.Equal(t, "google-key", cfg.Places.APIKey)
		assert.Equal(t, "client-key", cfg.Auth.ClientAPIKey)
		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, ":3000", cfg.GetServerAddr())
		assert.Equal(t, "http", cfg.Places.Provider)
		assert.Equal(t, "https://maps.googleapis.com", cfg.Places.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Places.RequestTimeout)
		assert.Equal(t, 0, cfg.Places.RateLimit)
		assert.Equal(t, "*", cfg.CORS.AllowOrigins)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("GOOGLE_PLACE_API_KEY", "google-key")
		t.Setenv("CLIENT_API_KEY", "client-key")
		t.Setenv("PORT", "8081")
		t.Setenv("PLACES_PROVIDER", "sdk")
		t.Setenv("PLACES_RATE_LIMIT", "20")
		t.Setenv("PLACES_REQUEST_TIMEOUT", "3")

		cfg, err := config.LoadFile("")
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, "sdk", cfg.Places.Provider)
		assert.Equal(t, 20, cfg.Places.RateLimit)
		assert.Equal(t, 3*time.Second, cfg.Places.RequestTimeout)
	})

	t.Run("reads dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "GOOGLE_PLACE_API_KEY=file-google\nCLIENT_API_KEY=file-client\nLOG_LEVEL=debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "file-google", cfg.Places.APIKey)
		assert.Equal(t, "file-client", cfg.Auth.ClientAPIKey)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("environment wins over dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "GOOGLE_PLACE_API_KEY=file-google\nCLIENT_API_KEY=file-client\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv("CLIENT_API_KEY", "env-client")

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "env-client", cfg.Auth.ClientAPIKey)
	})

	t.Run("missing required keys", func(t *testing.T) {
		t.Setenv("GOOGLE_PLACE_API_KEY", "")
		t.Setenv("CLIENT_API_KEY", "")

		cfg, err := config.LoadFile("")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.EqualError(t, err, "missing environment variables: GOOGLE_PLACE_API_KEY, CLIENT_API_KEY")
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("GOOGLE_PLACE_API_KEY", "google-key")
		t.Setenv("CLIENT_API_KEY", "client-key")
		t.Setenv("PORT", "70000")

		_, err := config.LoadFile("")
		assert.ErrorContains(t, err, "invalid PORT")
	})
}

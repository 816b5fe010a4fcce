package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishwar/notifications/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mishwar-prod", cfg.ProjectID)
	assert.Equal(t, "europe-west1", cfg.Region)
	assert.Equal(t, config.ProviderFCM, cfg.PushProvider)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "mishwar-staging")
	t.Setenv("PUSH_PROVIDER", "expo")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mishwar-staging", cfg.ProjectID)
	assert.Equal(t, config.ProviderExpo, cfg.PushProvider)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("PUSH_PROVIDER", "carrier-pigeon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

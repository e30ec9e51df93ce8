package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "leave")
	t.Setenv("DB_NAME", "leave_approval")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 50, cfg.Kafka.BatchSize)
	assert.True(t, cfg.Workflow.CatalogueEnabled)
	assert.Equal(t, "Africa/Accra", cfg.Location().String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8081")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
server:
  port: "9000"
kafka:
  broker: kafka:9092
workflow:
  catalogue_enabled: false
logger:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "kafka:9092", cfg.Kafka.Broker)
	assert.False(t, cfg.Workflow.CatalogueEnabled)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("DB_USER", "leave")
		t.Setenv("DB_NAME", "leave_approval")
		t.Setenv("JWT_SECRET", "")

		_, err := Load("")

		assert.ErrorContains(t, err, "jwt.secret")
	})

	t.Run("bad timezone", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("WORKFLOW_TIMEZONE", "Mars/Olympus")

		_, err := Load("")

		assert.ErrorContains(t, err, "workflow.timezone")
	})

	t.Run("missing file", func(t *testing.T) {
		setRequiredEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.ErrorContains(t, err, "failed to read config file")
	})
}

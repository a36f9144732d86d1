package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("TAOWATCH_RPC_URL", "http://node:9933")
	t.Setenv("TAOWATCH_SIDECAR_URL", "http://sidecar:8080")
	t.Setenv("TAOWATCH_SWAP_WEBHOOK_URL", "https://discord.com/api/webhooks/1/a")
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load(missingFile(t))
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "finney", cfg.Network)
		assert.Equal(t, 12*time.Second, cfg.PollInterval)
		assert.Equal(t, uint64(10), cfg.MaxCatchUp)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, BackendRedis, cfg.EnrichmentBackend)
		assert.Equal(t, "https://api.taostats.io", cfg.RegistryURL)
		assert.True(t, cfg.MinValidatorStake.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "@every 1h", cfg.RefreshSchedule)
		assert.Equal(t, 4, cfg.DeliveryWorkers)
		assert.Equal(t, blockscan.DefaultDirectEventNames(), cfg.DirectEventNames())
		assert.False(t, cfg.TelemetryEnabled)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_POLL_INTERVAL", "3s")
		t.Setenv("TAOWATCH_MIN_VALIDATOR_STAKE", "2500.5")
		t.Setenv("TAOWATCH_NETWORK_DISSOLVED_EVENTS", "NetworkRemoved")
		t.Setenv("TAOWATCH_ENRICHMENT_BACKEND", "postgres")
		t.Setenv("TAOWATCH_POSTGRES_DSN", "postgres://u:p@db/taowatch")

		cfg, err := Load(missingFile(t))
		require.NoError(t, err)

		assert.Equal(t, 3*time.Second, cfg.PollInterval)
		assert.True(t, cfg.MinValidatorStake.Equal(decimal.RequireFromString("2500.5")))
		assert.Equal(t, []string{"NetworkRemoved"}, cfg.NetworkDissolvedEvents)
		assert.Equal(t, BackendPostgres, cfg.EnrichmentBackend)
	})

	t.Run("reads a dotenv file without overriding the environment", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_NETWORK", "testnet")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TAOWATCH_NETWORK=local\nTAOWATCH_LOG_LEVEL=debug\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("TAOWATCH_LOG_LEVEL") })

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "testnet", cfg.Network)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("rejects a missing endpoint", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_RPC_URL", "")

		_, err := Load(missingFile(t))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("requires a dsn for the postgres backend", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_ENRICHMENT_BACKEND", "postgres")

		_, err := Load(missingFile(t))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("rejects an unknown backend", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_ENRICHMENT_BACKEND", "sqlite")

		_, err := Load(missingFile(t))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("rejects a negative stake threshold", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_MIN_VALIDATOR_STAKE", "-1")

		_, err := Load(missingFile(t))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("rejects a malformed refresh schedule", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_REFRESH_SCHEDULE", "every hour")

		_, err := Load(missingFile(t))
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "REFRESH_SCHEDULE")
	})

	t.Run("reports an undecodable value", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TAOWATCH_POLL_INTERVAL", "soon")

		_, err := Load(missingFile(t))
		assert.Error(t, err)
	})
}

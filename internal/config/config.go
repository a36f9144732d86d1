// Package config loads the process configuration from TAOWATCH_ prefixed
// environment variables, optionally seeded from a dotenv file.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Prefix is prepended to every environment variable name.
const Prefix = "TAOWATCH"

const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config is the full configuration surface of the process.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Chain access.
	Network      string        `envconfig:"NETWORK" default:"finney" validate:"required"`
	RPCURL       string        `envconfig:"RPC_URL" validate:"required,url"`
	SidecarURL   string        `envconfig:"SIDECAR_URL" validate:"required,url"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"min=1s"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"min=1s"`
	MaxCatchUp   uint64        `envconfig:"MAX_CATCH_UP" default:"10" validate:"min=1"`
	FetchRetries uint          `envconfig:"FETCH_RETRIES" default:"3" validate:"min=1"`

	// Redis holds the cursor and delivery markers, and the lookup tables when
	// it is the enrichment backend.
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`

	EnrichmentBackend string `envconfig:"ENRICHMENT_BACKEND" default:"redis" validate:"oneof=redis postgres"`
	PostgresDSN       string `envconfig:"POSTGRES_DSN" validate:"required_if=EnrichmentBackend postgres"`

	// Registry the lookup tables are rebuilt from.
	RegistryURL       string          `envconfig:"REGISTRY_URL" default:"https://api.taostats.io" validate:"required,url"`
	RegistryAPIKey    string          `envconfig:"REGISTRY_API_KEY"`
	MinValidatorStake decimal.Decimal `envconfig:"MIN_VALIDATOR_STAKE" default:"1000"`
	RefreshSchedule   string          `envconfig:"REFRESH_SCHEDULE" default:"@every 1h" validate:"required,cron"`

	SwapWebhookURL     string `envconfig:"SWAP_WEBHOOK_URL" validate:"required,url"`
	DissolveWebhookURL string `envconfig:"DISSOLVE_WEBHOOK_URL" validate:"omitempty,url"`
	DeliveryWorkers    int    `envconfig:"DELIVERY_WORKERS" default:"4" validate:"min=1"`

	ColdkeySwappedEvents   []string `envconfig:"COLDKEY_SWAPPED_EVENTS" default:"ColdkeySwapped" validate:"min=1,dive,required"`
	NetworkDissolvedEvents []string `envconfig:"NETWORK_DISSOLVED_EVENTS" default:"NetworkRemoved,NetworkDissolved" validate:"min=1,dive,required"`

	// Environment tags error reports and telemetry resources.
	Environment string `envconfig:"ENVIRONMENT" default:"production"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"taowatch" validate:"required"`
}

// DirectEventNames returns the configured identifiers of executed swap and
// dissolution events.
func (c Config) DirectEventNames() blockscan.DirectEventNames {
	return blockscan.DirectEventNames{
		ColdkeySwapped:   c.ColdkeySwappedEvents,
		NetworkDissolved: c.NetworkDissolvedEvents,
	}
}

// Load reads envFiles (".env" when none is given) without overriding variables
// already set, then decodes and validates the environment. Missing dotenv
// files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.MinValidatorStake.IsNegative() {
		return Config{}, errors.Join(validator.ErrValidationFailed, errors.New("MIN_VALIDATOR_STAKE: must not be negative"))
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

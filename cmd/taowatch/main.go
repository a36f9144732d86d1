package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/taowatch/internal/blockproc"
	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/chainwatch"
	"github.com/gabapcia/taowatch/internal/config"
	"github.com/gabapcia/taowatch/internal/enrichment"
	"github.com/gabapcia/taowatch/internal/handlers/cli"
	"github.com/gabapcia/taowatch/internal/infra/notify/discord"
	"github.com/gabapcia/taowatch/internal/infra/registry/taostats"
	"github.com/gabapcia/taowatch/internal/infra/storage/postgres"
	"github.com/gabapcia/taowatch/internal/infra/storage/redis"
	"github.com/gabapcia/taowatch/internal/infra/substrate"
	"github.com/gabapcia/taowatch/internal/pkg/errtrack"
	"github.com/gabapcia/taowatch/internal/pkg/logger"
	"github.com/gabapcia/taowatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/taowatch/internal/pkg/telemetry"
	httpclient "github.com/gabapcia/taowatch/internal/pkg/transport/http"
	"github.com/gabapcia/taowatch/internal/pkg/transport/jsonrpc"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 5 * time.Second

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		logger.Error(ctx, "taowatch stopped with an error", "error", err)
		_ = logger.Sync()

		fmt.Fprintln(os.Stderr, "taowatch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, terr := telemetry.Init(ctx, cfg.ServiceName,
			telemetry.WithServiceVersion(version),
			telemetry.WithEnvironment(cfg.Environment),
		)
		if terr != nil {
			return fmt.Errorf("init telemetry: %w", terr)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err = errors.Join(err, shutdown(ctx))
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	flush, err := errtrack.Init(cfg.SentryDSN,
		errtrack.WithEnvironment(cfg.Environment),
		errtrack.WithRelease(version),
	)
	if err != nil {
		return fmt.Errorf("init error tracking: %w", err)
	}
	defer flush(shutdownTimeout)

	rdb, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	var repository enrichment.Repository = rdb
	if cfg.EnrichmentBackend == config.BackendPostgres {
		store, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		repository = store
	}

	httpClient := httpclient.NewClient(
		httpclient.WithTimeout(cfg.HTTPTimeout),
		httpclient.WithUserAgent("taowatch/"+version),
		httpclient.WithRetryLogging(),
	)

	chain := substrate.NewClient(
		jsonrpc.NewClient(httpClient.StandardClient(), cfg.RPCURL),
		httpClient,
		cfg.SidecarURL,
	)

	refresher := enrichment.NewRefresher(
		taostats.NewClient(httpClient, cfg.RegistryURL, cfg.RegistryAPIKey),
		repository,
		enrichment.WithSchedule(cfg.RefreshSchedule),
		enrichment.WithMinStake(cfg.MinValidatorStake),
	)

	inspector := blockscan.New(
		enrichment.NewResolver(repository),
		blockscan.WithDirectEventNames(cfg.DirectEventNames()),
	)

	notifier, err := discord.New(httpClient, cfg.SwapWebhookURL, cfg.DissolveWebhookURL)
	if err != nil {
		return err
	}

	watcher := chainwatch.New(cfg.Network, chain,
		chainwatch.WithRetry(retry.New(
			retry.WithAttempts(cfg.FetchRetries),
			retry.WithLastErrorOnly(false),
		)),
		chainwatch.WithCheckpointStorage(rdb),
		chainwatch.WithPollInterval(cfg.PollInterval),
		chainwatch.WithMaxCatchUp(cfg.MaxCatchUp),
	)

	return cli.Run(ctx, cli.Dependencies{
		Network: cfg.Network,
		Pipeline: blockproc.New(watcher, inspector, notifier,
			blockproc.WithCacheRefresher(refresher),
			blockproc.WithIdempotencyGuard(rdb, 0),
			blockproc.WithDeliveryWorkers(cfg.DeliveryWorkers),
		),
		Delivery: blockproc.New(nil, inspector, notifier,
			blockproc.WithCacheRefresher(refresher),
			blockproc.WithDeliveryWorkers(cfg.DeliveryWorkers),
		),
		Chain:     chain,
		Inspector: inspector,
		Refresher: refresher,
	})
}

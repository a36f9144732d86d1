// Package blockproc coordinates the block pipeline: it consumes the snapshots
// streamed by chainwatch, inspects them for governance activity, delivers the
// rendered notifications and keeps the enrichment cache fresh.
package blockproc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/chainwatch"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// ErrNoBlockSource is returned by Start when the service was built without a
// chainwatch source. Such a service can still Handle blocks directly.
var ErrNoBlockSource = errors.New("no block source configured")

const instrumentationName = "github.com/gabapcia/taowatch/internal/blockproc"

const (
	defaultDeliveryWorkers = 4
	defaultClaimTTL        = 2 * time.Minute
)

// Service defines the blockproc lifecycle and coordination entrypoint.
type Service interface {
	// Start launches chainwatch and handles every observed block until Close.
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close stops chainwatch and waits for the block in flight. It is safe to
	// call Close even if the service was never started.
	Close()

	// Handle inspects a single block and delivers its notifications.
	Handle(ctx context.Context, block chainwatch.ObservedBlock) (BlockResult, error)
}

// closeFunc defines a cleanup routine to stop background goroutines and dependencies.
type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	chainwatch chainwatch.Service
	inspector  blockscan.Service
	notifier   Notifier
	refresher  CacheRefresher
	guard      IdempotencyGuard
	claimTTL   time.Duration

	pool    pond.Pool
	metrics *metrics
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if s.chainwatch == nil {
		return ErrNoBlockSource
	}

	ctx, cancel := context.WithCancel(ctx)

	blocksCh, err := s.chainwatch.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleObservedBlocks(ctx, blocksCh)
	}()

	s.closeFunc = func() {
		cancel()
		s.chainwatch.Close()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

type config struct {
	refresher       CacheRefresher
	guard           IdempotencyGuard
	claimTTL        time.Duration
	deliveryWorkers int
	meterProvider   metric.MeterProvider
	tracerProvider  trace.TracerProvider
}

type Option func(*config)

// WithCacheRefresher sets the refresher triggered when a block invalidates
// the enrichment cache.
func WithCacheRefresher(r CacheRefresher) Option {
	return func(c *config) {
		c.refresher = r
	}
}

// WithIdempotencyGuard sets the guard that prevents duplicate deliveries.
// ttl bounds how long a claim survives a crashed worker. Default: 2m.
func WithIdempotencyGuard(g IdempotencyGuard, ttl time.Duration) Option {
	return func(c *config) {
		c.guard = g
		if ttl > 0 {
			c.claimTTL = ttl
		}
	}
}

// WithDeliveryWorkers bounds how many notifications are delivered concurrently.
func WithDeliveryWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.deliveryWorkers = n
		}
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// New creates the coordinator. source may be nil when blocks are only passed
// to Handle.
func New(source chainwatch.Service, inspector blockscan.Service, notifier Notifier, opts ...Option) *service {
	cfg := config{
		refresher:       nopRefresher{},
		guard:           nopGuard{},
		claimTTL:        defaultClaimTTL,
		deliveryWorkers: defaultDeliveryWorkers,
		meterProvider:   otel.GetMeterProvider(),
		tracerProvider:  otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chainwatch: source,
		inspector:  inspector,
		notifier:   notifier,
		refresher:  cfg.refresher,
		guard:      cfg.guard,
		claimTTL:   cfg.claimTTL,
		pool:       pond.NewPool(cfg.deliveryWorkers),
		metrics:    newMetrics(cfg.meterProvider.Meter(instrumentationName)),
		tracer:     cfg.tracerProvider.Tracer(instrumentationName),
	}
}

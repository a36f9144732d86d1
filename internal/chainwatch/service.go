// Package chainwatch polls a chain for new heights and streams the decoded
// snapshot of each one, resuming from a persisted checkpoint.
package chainwatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/taowatch/internal/pkg/logger"
	"github.com/gabapcia/taowatch/internal/pkg/resilience/retry"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const observedBlockChannelBufferSize = 10

const (
	defaultPollInterval = 12 * time.Second
	defaultMaxCatchUp   = 10
)

type Service interface {
	// Start loads the checkpoint and begins polling. The returned channel is
	// closed once the service is closed or ctx is canceled.
	Start(ctx context.Context) (<-chan ObservedBlock, error)
	Close()
}

type closeFunc func()
type dispatchFailureHandler func(ctx context.Context, dispatchFailure BlockDispatchFailure)

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	network           string
	chain             Chain
	checkpointStorage CheckpointStorage

	retry                  retry.Retry
	dispatchFailureHandler dispatchFailureHandler

	pollInterval time.Duration
	maxCatchUp   uint64
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan ObservedBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	cur, err := s.loadCursor(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		observedBlockCh = make(chan ObservedBlock, observedBlockChannelBufferSize)
		done            = make(chan struct{})
	)

	go func() {
		defer close(done)
		defer close(observedBlockCh)

		s.poll(ctx, cur, observedBlockCh)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return observedBlockCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	retry                  retry.Retry
	checkpointStorage      CheckpointStorage
	dispatchFailureHandler dispatchFailureHandler
	pollInterval           time.Duration
	maxCatchUp             uint64
}

type Option func(*config)

// New creates a watcher for chain, identified in checkpoints and logs as network.
func New(network string, chain Chain, opts ...Option) *service {
	cfg := config{
		retry:                  nil,
		checkpointStorage:      nopCheckpoint{},
		dispatchFailureHandler: defaultOnDispatchFailure,
		pollInterval:           defaultPollInterval,
		maxCatchUp:             defaultMaxCatchUp,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		network:                network,
		chain:                  chain,
		checkpointStorage:      cfg.checkpointStorage,
		retry:                  cfg.retry,
		dispatchFailureHandler: cfg.dispatchFailureHandler,
		pollInterval:           cfg.pollInterval,
		maxCatchUp:             cfg.maxCatchUp,
	}
}

func defaultOnDispatchFailure(ctx context.Context, dispatchFailure BlockDispatchFailure) {
	logger.Error(ctx, "block dispatch failure",
		"block.network", dispatchFailure.Network,
		"block.height", dispatchFailure.Height,
		"block.attempts", len(dispatchFailure.Errors),
		"error", errors.Join(dispatchFailure.Errors...),
	)
}

func WithDispatchFailureHandler(f dispatchFailureHandler) Option {
	return func(c *config) {
		c.dispatchFailureHandler = f
	}
}

func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithPollInterval sets how often the chain head is read. Default: 12s.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithMaxCatchUp bounds how many heights a single cycle processes. Older
// pending heights are skipped. Default: 10.
func WithMaxCatchUp(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxCatchUp = n
		}
	}
}

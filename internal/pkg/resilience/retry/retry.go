// Package retry runs operations under an exponential backoff policy built on
// avast/retry-go. Every failed attempt that is retried is logged at warn
// level with the context of the caller.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/taowatch/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempts run out or ctx is
// done.
type Retry interface {
	// Execute calls operation at once and then after each backoff delay while
	// it keeps failing. operation must be safe to repeat.
	//
	// The returned error is the last attempt's error, or every attempt's
	// error when WithLastErrorOnly(false) was given; Unwrap lists them. A
	// canceled ctx stops the loop and its error is part of the result.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
}

type Option func(*config)

type policy struct {
	cfg config
}

var _ Retry = (*policy)(nil)

func (p *policy) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Context(ctx),
		retry.Attempts(p.cfg.attempts),
		retry.Delay(p.cfg.delay),
		retry.MaxDelay(p.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(p.cfg.lastErrOnly),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "attempt failed, retrying",
				"retry.attempt", n+1,
				"retry.max_attempts", p.cfg.attempts,
				"error", err,
			)
		}),
	)
}

// New returns a backoff policy. Defaults: 3 attempts, 1s base delay doubling
// up to 5s, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &policy{cfg: cfg}
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between returning the last attempt's error (true)
// and every attempt's error (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// Permanent marks err as not worth retrying. Execute returns it right away.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// Unwrap flattens an error returned by Execute into the errors of each
// attempt. Errors not produced by a multi-attempt run are returned as a
// single element slice, and a nil error yields nil.
func Unwrap(err error) []error {
	if err == nil {
		return nil
	}

	var attempts retry.Error
	if errors.As(err, &attempts) {
		return attempts.WrappedErrors()
	}

	return []error{err}
}

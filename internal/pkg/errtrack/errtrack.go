// Package errtrack ships errors to Sentry. Until Init is called with a DSN,
// every capture is a no-op.
package errtrack

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

// FlushFunc waits up to timeout for buffered events to be sent.
type FlushFunc func(timeout time.Duration) bool

var enabled atomic.Bool

type config struct {
	environment string
	release     string
}

type Option func(*config)

func WithEnvironment(env string) Option {
	return func(c *config) {
		c.environment = env
	}
}

func WithRelease(release string) Option {
	return func(c *config) {
		c.release = release
	}
}

// Init configures the Sentry client. An empty dsn leaves error tracking
// disabled and returns a flush that does nothing.
func Init(dsn string, opts ...Option) (FlushFunc, error) {
	if dsn == "" {
		return func(time.Duration) bool { return true }, nil
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.environment,
		Release:          cfg.release,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, err
	}

	enabled.Store(true)
	return sentry.Flush, nil
}

// Capture reports err with the given tags. It is safe to call with a nil error.
func Capture(ctx context.Context, err error, tags map[string]string) {
	if err == nil || !enabled.Load() {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

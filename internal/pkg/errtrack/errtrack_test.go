package errtrack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	events chan *sentry.Event
}

func (r *recordingTransport) Flush(time.Duration) bool              { return true }
func (r *recordingTransport) FlushWithContext(context.Context) bool { return true }
func (r *recordingTransport) Configure(sentry.ClientOptions)        {}
func (r *recordingTransport) Close()                                {}
func (r *recordingTransport) SendEvent(event *sentry.Event)         { r.events <- event }

// recordingContext returns a context whose hub sends events to the returned channel.
func recordingContext(t *testing.T) (context.Context, <-chan *sentry.Event) {
	t.Helper()

	transport := &recordingTransport{events: make(chan *sentry.Event, 1)}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         "https://public@sentry.example.com/1",
		Environment: "test",
		Transport:   transport,
	})
	require.NoError(t, err)

	hub := sentry.NewHub(client, sentry.NewScope())
	return sentry.SetHubOnContext(t.Context(), hub), transport.events
}

func TestInit(t *testing.T) {
	t.Run("empty dsn keeps tracking disabled", func(t *testing.T) {
		enabled.Store(false)

		flush, err := Init("")

		require.NoError(t, err)
		assert.False(t, enabled.Load())
		assert.True(t, flush(time.Millisecond))
	})

	t.Run("invalid dsn", func(t *testing.T) {
		enabled.Store(false)

		_, err := Init("not a dsn")

		assert.Error(t, err)
		assert.False(t, enabled.Load())
	})

	t.Run("configures the global client", func(t *testing.T) {
		t.Cleanup(func() { enabled.Store(false) })

		_, err := Init("https://public@sentry.example.com/1",
			WithEnvironment("staging"),
			WithRelease("v1.2.3"),
		)

		require.NoError(t, err)
		assert.True(t, enabled.Load())

		opts := sentry.CurrentHub().Client().Options()
		assert.Equal(t, "staging", opts.Environment)
		assert.Equal(t, "v1.2.3", opts.Release)
	})
}

func TestCapture(t *testing.T) {
	t.Run("disabled capture drops the error", func(t *testing.T) {
		enabled.Store(false)
		ctx, events := recordingContext(t)

		Capture(ctx, errors.New("boom"), nil)

		assert.Empty(t, events)
	})

	t.Run("captured error carries tags", func(t *testing.T) {
		enabled.Store(true)
		t.Cleanup(func() { enabled.Store(false) })
		ctx, events := recordingContext(t)

		Capture(ctx, errors.New("boom"), map[string]string{"block.height": "42"})

		select {
		case event := <-events:
			assert.Equal(t, "test", event.Environment)
			assert.Equal(t, "42", event.Tags["block.height"])
			require.NotEmpty(t, event.Exception)
			assert.Equal(t, "boom", event.Exception[0].Value)
		case <-time.After(time.Second):
			require.FailNow(t, "event was not captured")
		}
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		enabled.Store(true)
		t.Cleanup(func() { enabled.Store(false) })
		ctx, events := recordingContext(t)

		Capture(ctx, nil, nil)

		assert.Empty(t, events)
	})
}

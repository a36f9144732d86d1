package redis

import (
	"testing"
	"time"

	"github.com/gabapcia/taowatch/internal/blockproc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ClaimBlock(t *testing.T) {
	t.Run("first claim succeeds", func(t *testing.T) {
		c, mr := newTestClient(t)

		err := c.ClaimBlock(t.Context(), "finney", 100, time.Minute)

		require.NoError(t, err)
		assert.True(t, mr.Exists("blockproc:idempotency:finney:100"))
		assert.Equal(t, time.Minute, mr.TTL("blockproc:idempotency:finney:100"))
	})

	t.Run("second claim while in progress", func(t *testing.T) {
		c, _ := newTestClient(t)
		require.NoError(t, c.ClaimBlock(t.Context(), "finney", 100, time.Minute))

		err := c.ClaimBlock(t.Context(), "finney", 100, time.Minute)

		assert.ErrorIs(t, err, blockproc.ErrStillInProgress)
	})

	t.Run("expired claim can be taken again", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, c.ClaimBlock(t.Context(), "finney", 100, time.Minute))

		mr.FastForward(2 * time.Minute)

		assert.NoError(t, c.ClaimBlock(t.Context(), "finney", 100, time.Minute))
	})

	t.Run("delivered block is never claimed again", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, c.ClaimBlock(t.Context(), "finney", 100, time.Minute))
		require.NoError(t, c.MarkBlockDelivered(t.Context(), "finney", 100))

		err := c.ClaimBlock(t.Context(), "finney", 100, time.Minute)

		assert.ErrorIs(t, err, blockproc.ErrAlreadyFinished)
		assert.Equal(t, blockprocDoneRetention, mr.TTL("blockproc:idempotency:finney:100"))
	})

	t.Run("claims are scoped by height and network", func(t *testing.T) {
		c, _ := newTestClient(t)
		require.NoError(t, c.ClaimBlock(t.Context(), "finney", 100, time.Minute))

		assert.NoError(t, c.ClaimBlock(t.Context(), "finney", 101, time.Minute))
		assert.NoError(t, c.ClaimBlock(t.Context(), "testnet", 100, time.Minute))
	})

	t.Run("storage failure", func(t *testing.T) {
		c, mr := newTestClient(t)
		mr.Close()

		err := c.ClaimBlock(t.Context(), "finney", 100, time.Minute)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, blockproc.ErrStillInProgress)
	})
}

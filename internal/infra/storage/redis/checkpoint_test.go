package redis

import (
	"testing"

	"github.com/gabapcia/taowatch/internal/chainwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Checkpoint(t *testing.T) {
	t.Run("no checkpoint saved yet", func(t *testing.T) {
		c, _ := newTestClient(t)

		_, err := c.LoadLatestCheckpoint(t.Context(), "finney")

		assert.ErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})

	t.Run("save then load", func(t *testing.T) {
		c, mr := newTestClient(t)

		require.NoError(t, c.SaveCheckpoint(t.Context(), "finney", 4920351))
		require.NoError(t, c.SaveCheckpoint(t.Context(), "finney", 4920352))

		height, err := c.LoadLatestCheckpoint(t.Context(), "finney")

		require.NoError(t, err)
		assert.Equal(t, uint64(4920352), height)
		assert.Equal(t, "4920352", must(mr.Get("chainwatch:checkpoint:finney")))
	})

	t.Run("checkpoints are kept per network", func(t *testing.T) {
		c, _ := newTestClient(t)

		require.NoError(t, c.SaveCheckpoint(t.Context(), "finney", 10))

		_, err := c.LoadLatestCheckpoint(t.Context(), "testnet")

		assert.ErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})

	t.Run("corrupted checkpoint", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, mr.Set("chainwatch:checkpoint:finney", "0x10"))

		_, err := c.LoadLatestCheckpoint(t.Context(), "finney")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})
}

func must(v string, err error) string {
	if err != nil {
		panic(err)
	}
	return v
}

package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewClient(t.Context(), mr.Addr(), "", "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestNewClient(t *testing.T) {
	t.Run("connects to a reachable server", func(t *testing.T) {
		c, _ := newTestClient(t)

		assert.NotNil(t, c)
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		c, err := NewClient(t.Context(), addr, "", "", 0)

		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

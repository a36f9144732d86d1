package blockscan_test

import (
	"testing"

	"github.com/gabapcia/taowatch/internal/blockscan"

	"github.com/stretchr/testify/assert"
)

func TestScanDirectEvents(t *testing.T) {
	names := blockscan.DefaultDirectEventNames()

	t.Run("finds both events regardless of extrinsic index", func(t *testing.T) {
		events := []blockscan.Event{
			event("ColdkeySwapped", idx(3), map[string]any{"old_coldkey": "X", "new_coldkey": "Y"}),
			event("NetworkRemoved", nil, map[string]any{"netuid": 9}),
		}

		scan := blockscan.ScanDirectEvents(events, names)

		assert.True(t, scan.SwapSeen)
		assert.NoError(t, scan.SwapErr)
		assert.Equal(t, blockscan.ColdkeySwappedAttributes{OldColdkey: "X", NewColdkey: "Y"}, scan.Swapped)
		assert.True(t, scan.DissolveSeen)
		assert.Equal(t, map[string]any{"netuid": 9}, scan.Dissolved)
		assert.True(t, scan.Stale())
	})

	t.Run("accepts every configured dissolve spelling", func(t *testing.T) {
		scan := blockscan.ScanDirectEvents([]blockscan.Event{event("NetworkDissolved", nil, map[string]any{})}, names)

		assert.True(t, scan.DissolveSeen)
		assert.False(t, scan.SwapSeen)
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		events := []blockscan.Event{
			event("ColdkeySwapped", nil, map[string]any{"old_coldkey": "A", "new_coldkey": "B"}),
			event("ColdkeySwapped", nil, map[string]any{"old_coldkey": "C", "new_coldkey": "D"}),
		}

		scan := blockscan.ScanDirectEvents(events, names)
		assert.Equal(t, "C", scan.Swapped.OldColdkey)
	})

	t.Run("malformed swap is seen and reported", func(t *testing.T) {
		scan := blockscan.ScanDirectEvents([]blockscan.Event{event("ColdkeySwapped", nil, map[string]any{"old_coldkey": "A"})}, names)

		assert.True(t, scan.SwapSeen)
		assert.ErrorIs(t, scan.SwapErr, blockscan.ErrMalformedAttributes)
		assert.True(t, scan.Stale())
	})

	t.Run("custom names replace the defaults", func(t *testing.T) {
		custom := blockscan.DirectEventNames{NetworkDissolved: []string{"SubnetDeregistered"}}
		events := []blockscan.Event{
			event("NetworkRemoved", nil, nil),
			event("SubnetDeregistered", nil, map[string]any{"netuid": 1}),
		}

		scan := blockscan.ScanDirectEvents(events, custom)
		assert.True(t, scan.DissolveSeen)
		assert.Equal(t, map[string]any{"netuid": 1}, scan.Dissolved)
	})

	t.Run("no direct events leaves the cache fresh", func(t *testing.T) {
		scan := blockscan.ScanDirectEvents([]blockscan.Event{success(0)}, names)
		assert.False(t, scan.Stale())
	})
}

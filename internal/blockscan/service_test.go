package blockscan_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gabapcia/taowatch/internal/blockscan"
	blockscanMocks "github.com/gabapcia/taowatch/internal/blockscan/mocks"
	"github.com/gabapcia/taowatch/internal/enrichment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	fieldBlock      = blockscan.KeyCurrentBlock
	fieldFailed     = blockscan.KeyExtrinsicFailed
	fieldSucceeded  = blockscan.KeyExtrinsicSucceeded
	fieldBlockTime  = blockscan.KeyCurrentBlockTime
	scenarioHeight  = 4_200_000
	timestampMillis = 1717171717000
)

func scheduleSwapSnapshot(events ...blockscan.Event) blockscan.Snapshot {
	return blockscan.Snapshot{
		Height:     scenarioHeight,
		Extrinsics: []blockscan.Extrinsic{call(0, "SubtensorModule", "schedule_swap_coldkey")},
		Events:     events,
	}
}

func swapScheduled(i int) blockscan.Event {
	return event(blockscan.EventColdkeySwapScheduled, idx(i), map[string]any{
		"old_coldkey":     "A",
		"new_coldkey":     "B",
		"execution_block": 100,
	})
}

func TestService_Inspect(t *testing.T) {
	t.Run("reports a successful scheduled swap", func(t *testing.T) {
		snap := scheduleSwapSnapshot(swapScheduled(0), success(0))

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)
		require.NoError(t, err)

		assert.Equal(t, uint64(scenarioHeight), bundle.Height)
		assert.False(t, bundle.CacheStale)
		require.Len(t, bundle.Notifications, 1)

		n := bundle.Notifications[0]
		assert.Contains(t, n.Title, "SCHEDULE_SWAP_COLDKEY")
		assert.Equal(t, blockscan.CategorySwap, n.Category)
		assert.Equal(t, blockscan.CategorySwap.Color(), n.Color)
		assert.Equal(t, []string{fieldBlock, "old_coldkey", "new_coldkey", "execution_block"}, n.Keys())

		values := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			values[i] = f.Value
		}
		assert.Equal(t, []string{"4200000", "A", "B", "100"}, values)
	})

	t.Run("reports a failed scheduled swap without domain fields", func(t *testing.T) {
		snap := scheduleSwapSnapshot(failure(0))

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)
		require.NoError(t, err)

		require.Len(t, bundle.Notifications, 1)
		n := bundle.Notifications[0]
		assert.Equal(t, []string{fieldBlock, fieldFailed}, n.Keys())

		marker, ok := n.Field(fieldFailed)
		require.True(t, ok)
		assert.Equal(t, "The extrinsic failed to execute.", marker.Value)
	})

	t.Run("reports an executed swap from events alone", func(t *testing.T) {
		snap := blockscan.Snapshot{
			Height:     scenarioHeight,
			Extrinsics: []blockscan.Extrinsic{call(0, "Timestamp", "set", blockscan.CallArg{Name: "now", Value: 1})},
			Events: []blockscan.Event{
				success(0),
				event("ColdkeySwapped", nil, map[string]any{"old_coldkey": "X", "new_coldkey": "Y"}),
			},
		}

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)
		require.NoError(t, err)

		assert.True(t, bundle.CacheStale)
		require.Len(t, bundle.Notifications, 1)
		n := bundle.Notifications[0]
		assert.Equal(t, blockscan.CategoryDirectSwap, n.Category)
		assert.Equal(t, []string{fieldBlock, "old_coldkey", "new_coldkey", fieldBlockTime}, n.Keys())
	})

	t.Run("empty block yields an empty bundle", func(t *testing.T) {
		bundle, err := blockscan.New(nil).Inspect(t.Context(), blockscan.Snapshot{Height: 1})

		require.NoError(t, err)
		assert.Empty(t, bundle.Notifications)
		assert.False(t, bundle.CacheStale)
	})

	t.Run("successful call without its event is malformed", func(t *testing.T) {
		snap := scheduleSwapSnapshot(success(0))

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)

		assert.Empty(t, bundle.Notifications)
		assert.ErrorIs(t, err, blockscan.ErrMalformedAttributes)

		var branchErr *blockscan.BranchError
		require.True(t, errors.As(err, &branchErr))
		assert.Equal(t, uint64(scenarioHeight), branchErr.Height)
		assert.Equal(t, blockscan.KindScheduleColdkeySwap, branchErr.Kind)
	})

	t.Run("a failing branch does not suppress its siblings", func(t *testing.T) {
		snap := blockscan.Snapshot{
			Height: scenarioHeight,
			Extrinsics: []blockscan.Extrinsic{
				call(0, "SubtensorModule", "schedule_swap_coldkey"),
				call(1, "SubtensorModule", "schedule_dissolve_network"),
				call(2, "SubtensorModule", "vote",
					blockscan.CallArg{Name: "hotkey", Value: "5HOT"},
					blockscan.CallArg{Name: "proposal", Value: "0xdead"},
					blockscan.CallArg{Name: "approve", Value: true},
				),
			},
			Events: []blockscan.Event{
				success(0),
				event(blockscan.EventDissolveNetworkScheduled, idx(1), map[string]any{
					"account": "OWNER", "netuid": 3, "execution_block": 900,
				}),
				success(1),
				success(2),
				event("NetworkRemoved", nil, map[string]any{"netuid": 3}),
			},
		}

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)

		require.Error(t, err)
		assert.ErrorIs(t, err, blockscan.ErrMalformedAttributes)
		assert.ErrorIs(t, err, blockscan.ErrMissingArgument)

		require.Len(t, bundle.Notifications, 2)
		assert.Equal(t, blockscan.CategoryDissolve, bundle.Notifications[0].Category)
		assert.Equal(t, blockscan.CategoryDirectDissolve, bundle.Notifications[1].Category)
		assert.True(t, bundle.CacheStale)
	})

	t.Run("malformed executed swap still marks the cache stale", func(t *testing.T) {
		snap := blockscan.Snapshot{
			Height: scenarioHeight,
			Events: []blockscan.Event{event("ColdkeySwapped", nil, map[string]any{"new_coldkey": "Y"})},
		}

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)

		assert.ErrorIs(t, err, blockscan.ErrMalformedAttributes)
		assert.Empty(t, bundle.Notifications)
		assert.True(t, bundle.CacheStale)
	})

	t.Run("reports in fixed order", func(t *testing.T) {
		snap := blockscan.Snapshot{
			Height: scenarioHeight,
			Extrinsics: []blockscan.Extrinsic{
				call(0, "SubtensorModule", "vote"),
				call(1, "SubtensorModule", "schedule_dissolve_network"),
				call(2, "SubtensorModule", "schedule_swap_coldkey"),
			},
			Events: []blockscan.Event{
				failure(0),
				failure(1),
				failure(2),
				event("NetworkDissolved", nil, map[string]any{"netuid": 1}),
				event("ColdkeySwapped", nil, map[string]any{"old_coldkey": "X", "new_coldkey": "Y"}),
			},
		}

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)
		require.NoError(t, err)

		categories := make([]blockscan.Category, len(bundle.Notifications))
		for i, n := range bundle.Notifications {
			categories[i] = n.Category
			assert.Equal(t, fieldBlock, n.Fields[0].Key)
		}
		assert.Equal(t, []blockscan.Category{
			blockscan.CategorySwap,
			blockscan.CategoryDissolve,
			blockscan.CategoryVote,
			blockscan.CategoryDirectSwap,
			blockscan.CategoryDirectDissolve,
		}, categories)
	})

	t.Run("custom call table is honored", func(t *testing.T) {
		table := blockscan.CallTable{
			{Module: "Governance", Function: "vote"}: blockscan.KindVote,
		}
		snap := blockscan.Snapshot{
			Height:     scenarioHeight,
			Extrinsics: []blockscan.Extrinsic{call(0, "SubtensorModule", "vote"), call(1, "Governance", "vote")},
			Events:     []blockscan.Event{failure(0), failure(1)},
		}

		bundle, err := blockscan.New(nil, blockscan.WithCallTable(table)).Inspect(t.Context(), snap)
		require.NoError(t, err)
		require.Len(t, bundle.Notifications, 1)
		assert.Equal(t, blockscan.CategoryVote, bundle.Notifications[0].Category)
	})
}

func TestService_Inspect_vote(t *testing.T) {
	voteSnapshot := func(events ...blockscan.Event) blockscan.Snapshot {
		return blockscan.Snapshot{
			Height: scenarioHeight,
			Extrinsics: []blockscan.Extrinsic{
				call(0, "SubtensorModule", "vote",
					blockscan.CallArg{Name: "hotkey", Value: "5HOT"},
					blockscan.CallArg{Name: "proposal", Value: "0xdead"},
					blockscan.CallArg{Name: "index", Value: 4},
					blockscan.CallArg{Name: "approve", Value: false},
				),
			},
			Events: events,
		}
	}

	t.Run("successful vote shows the vote and the success marker", func(t *testing.T) {
		bundle, err := blockscan.New(nil).Inspect(t.Context(), voteSnapshot(success(0)))
		require.NoError(t, err)
		require.Len(t, bundle.Notifications, 1)

		n := bundle.Notifications[0]
		assert.Equal(t, []string{fieldBlock, "hotkey", "proposal", "approve", "index", fieldSucceeded}, n.Keys())

		approve, _ := n.Field("approve")
		assert.Equal(t, "false", approve.Value)
	})

	t.Run("failed vote shows only the failure marker", func(t *testing.T) {
		bundle, err := blockscan.New(nil).Inspect(t.Context(), voteSnapshot(failure(0)))
		require.NoError(t, err)
		require.Len(t, bundle.Notifications, 1)

		assert.Equal(t, []string{fieldBlock, fieldFailed}, bundle.Notifications[0].Keys())
	})
}

func TestService_Inspect_timestamp(t *testing.T) {
	t.Run("appends the block time when the block sets it", func(t *testing.T) {
		snap := scheduleSwapSnapshot(swapScheduled(1), success(1))
		snap.Extrinsics = []blockscan.Extrinsic{
			call(0, "Timestamp", "set", blockscan.CallArg{Name: "now", Value: timestampMillis}),
			call(1, "SubtensorModule", "schedule_swap_coldkey"),
		}

		bundle, err := blockscan.New(nil).Inspect(t.Context(), snap)
		require.NoError(t, err)
		require.Len(t, bundle.Notifications, 1)

		n := bundle.Notifications[0]
		assert.Equal(t, fieldBlockTime, n.Fields[len(n.Fields)-1].Key)

		ts, _ := n.Field(fieldBlockTime)
		assert.Equal(t, "2024-05-31T16:08:37Z", ts.Value)
	})
}

func TestService_Inspect_annotation(t *testing.T) {
	t.Run("appends exactly one line to known accounts", func(t *testing.T) {
		enricher := blockscanMocks.NewEnricher(t)
		enricher.EXPECT().ResolveValidatorByColdkey(mock.Anything, "A").
			Return(enrichment.ValidatorMatch{Name: "Foundry", Counterpart: "5HOT", Found: true})
		enricher.EXPECT().ResolveSubnetOwner(mock.Anything, "A").Return(uint16(12), true)
		enricher.EXPECT().ResolveValidatorByColdkey(mock.Anything, "B").Return(enrichment.ValidatorMatch{})
		enricher.EXPECT().ResolveSubnetOwner(mock.Anything, "B").Return(uint16(0), false)

		bundle, err := blockscan.New(enricher).Inspect(t.Context(), scheduleSwapSnapshot(swapScheduled(0), success(0)))
		require.NoError(t, err)
		require.Len(t, bundle.Notifications, 1)

		n := bundle.Notifications[0]
		old, _ := n.Field("old_coldkey")
		lines := strings.Split(old.Value, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "A", lines[0])
		assert.Contains(t, lines[1], "Foundry")
		assert.Contains(t, lines[1], "https://taostats.io/validator/5HOT")
		assert.Contains(t, lines[1], "https://taostats.io/subnets/12")

		unknown, _ := n.Field("new_coldkey")
		assert.Equal(t, "B", unknown.Value)

		block, _ := n.Field(fieldBlock)
		assert.Equal(t, "4200000", block.Value)
	})

	t.Run("unnamed validators get a placeholder", func(t *testing.T) {
		enricher := blockscanMocks.NewEnricher(t)
		enricher.EXPECT().ResolveValidatorByHotkey(mock.Anything, "5HOT").
			Return(enrichment.ValidatorMatch{Counterpart: "5COLD", Found: true})

		snap := blockscan.Snapshot{
			Height: scenarioHeight,
			Extrinsics: []blockscan.Extrinsic{
				call(0, "SubtensorModule", "vote",
					blockscan.CallArg{Name: "hotkey", Value: "5HOT"},
					blockscan.CallArg{Name: "proposal", Value: "0xdead"},
					blockscan.CallArg{Name: "index", Value: 4},
					blockscan.CallArg{Name: "approve", Value: true},
				),
			},
			Events: []blockscan.Event{success(0)},
		}

		links := blockscan.LinkTemplates{Validator: "https://example.test/v/%s", Subnet: "https://example.test/s/%d"}
		bundle, err := blockscan.New(enricher, blockscan.WithLinkTemplates(links)).Inspect(t.Context(), snap)
		require.NoError(t, err)

		hotkey, _ := bundle.Notifications[0].Field("hotkey")
		assert.Equal(t, "5HOT\nValidator: no name (https://example.test/v/5HOT)", hotkey.Value)
	})

	t.Run("validator without a known hotkey gets no link", func(t *testing.T) {
		enricher := blockscanMocks.NewEnricher(t)
		enricher.EXPECT().ResolveValidatorByColdkey(mock.Anything, "A").
			Return(enrichment.ValidatorMatch{Name: "Foundry", Found: true})
		enricher.EXPECT().ResolveSubnetOwner(mock.Anything, "A").Return(uint16(0), false)
		enricher.EXPECT().ResolveValidatorByColdkey(mock.Anything, "B").Return(enrichment.ValidatorMatch{})
		enricher.EXPECT().ResolveSubnetOwner(mock.Anything, "B").Return(uint16(0), false)

		bundle, err := blockscan.New(enricher).Inspect(t.Context(), scheduleSwapSnapshot(swapScheduled(0), success(0)))
		require.NoError(t, err)

		old, _ := bundle.Notifications[0].Field("old_coldkey")
		assert.Equal(t, "A\nValidator: Foundry", old.Value)
	})

	t.Run("dissolved network accounts are annotated", func(t *testing.T) {
		enricher := blockscanMocks.NewEnricher(t)
		enricher.EXPECT().ResolveValidatorByColdkey(mock.Anything, "5OWNER").Return(enrichment.ValidatorMatch{})
		enricher.EXPECT().ResolveSubnetOwner(mock.Anything, "5OWNER").Return(uint16(7), true)

		snap := blockscan.Snapshot{
			Height: scenarioHeight,
			Events: []blockscan.Event{
				event("NetworkDissolved", nil, map[string]any{"account": "5OWNER", "netuid": 7}),
			},
		}

		bundle, err := blockscan.New(enricher).Inspect(t.Context(), snap)
		require.NoError(t, err)
		require.Len(t, bundle.Notifications, 1)

		account, ok := bundle.Notifications[0].Field("account")
		require.True(t, ok)
		assert.Equal(t, "5OWNER\nSubnet owner: SN7 (https://taostats.io/subnets/7)", account.Value)
	})
}

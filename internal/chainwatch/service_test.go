package chainwatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/chainwatch"
	chainwatchMocks "github.com/gabapcia/taowatch/internal/chainwatch/mocks"
	retryMocks "github.com/gabapcia/taowatch/internal/pkg/resilience/retry/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const network = "finney"

func receive(t *testing.T, ch <-chan chainwatch.ObservedBlock) chainwatch.ObservedBlock {
	t.Helper()

	select {
	case block, ok := <-ch:
		require.True(t, ok, "channel closed before a block was observed")
		return block
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for an observed block")
		return chainwatch.ObservedBlock{}
	}
}

func TestService_Start(t *testing.T) {
	t.Run("starts at the head without a checkpoint", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		checkpoint := chainwatchMocks.NewCheckpointStorage(t)

		checkpoint.EXPECT().LoadLatestCheckpoint(mock.Anything, network).Return(uint64(0), chainwatch.ErrNoCheckpointFound)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(100), nil).Once()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(100)).Return(blockscan.Snapshot{Height: 100}, nil)
		checkpoint.EXPECT().SaveCheckpoint(mock.Anything, network, uint64(100)).Return(nil)

		svc := chainwatch.New(network, chain,
			chainwatch.WithCheckpointStorage(checkpoint),
			chainwatch.WithPollInterval(time.Hour),
		)

		blocksCh, err := svc.Start(t.Context())
		require.NoError(t, err)

		block := receive(t, blocksCh)
		assert.Equal(t, network, block.Network)
		assert.Equal(t, uint64(100), block.Snapshot.Height)

		svc.Close()

		_, ok := <-blocksCh
		assert.False(t, ok, "channel should be closed after Close")
	})

	t.Run("resumes after the saved checkpoint in height order", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		checkpoint := chainwatchMocks.NewCheckpointStorage(t)

		checkpoint.EXPECT().LoadLatestCheckpoint(mock.Anything, network).Return(uint64(98), nil)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(100), nil).Once()
		for _, h := range []uint64{99, 100} {
			chain.EXPECT().FetchSnapshot(mock.Anything, h).Return(blockscan.Snapshot{Height: h}, nil)
			checkpoint.EXPECT().SaveCheckpoint(mock.Anything, network, h).Return(nil)
		}

		svc := chainwatch.New(network, chain,
			chainwatch.WithCheckpointStorage(checkpoint),
			chainwatch.WithPollInterval(time.Hour),
		)

		blocksCh, err := svc.Start(t.Context())
		require.NoError(t, err)

		assert.Equal(t, uint64(99), receive(t, blocksCh).Snapshot.Height)
		assert.Equal(t, uint64(100), receive(t, blocksCh).Snapshot.Height)

		svc.Close()
	})

	t.Run("checkpoint advances once the block is handed off", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		checkpoint := chainwatchMocks.NewCheckpointStorage(t)
		saved := make(chan uint64, 1)

		checkpoint.EXPECT().LoadLatestCheckpoint(mock.Anything, network).Return(uint64(41), nil)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(42), nil).Once()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(42)).Return(blockscan.Snapshot{Height: 42}, nil)
		checkpoint.EXPECT().SaveCheckpoint(mock.Anything, network, uint64(42)).
			RunAndReturn(func(_ context.Context, _ string, height uint64) error {
				saved <- height
				return nil
			}).Once()

		svc := chainwatch.New(network, chain,
			chainwatch.WithCheckpointStorage(checkpoint),
			chainwatch.WithPollInterval(time.Hour),
		)

		_, err := svc.Start(t.Context())
		require.NoError(t, err)

		// Nothing reads the channel: the consumer's outcome does not hold the cursor back.
		select {
		case height := <-saved:
			assert.Equal(t, uint64(42), height)
		case <-time.After(time.Second):
			require.FailNow(t, "checkpoint was not saved")
		}

		svc.Close()
	})

	t.Run("fetch failure aborts the cycle and reaches the dispatch failure handler", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		checkpoint := chainwatchMocks.NewCheckpointStorage(t)
		fetchErr := errors.Join(blockscan.ErrSourceUnavailable, errors.New("sidecar down"))

		checkpoint.EXPECT().LoadLatestCheckpoint(mock.Anything, network).Return(uint64(98), nil)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(100), nil).Once()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(99)).Return(blockscan.Snapshot{}, fetchErr)

		failures := make(chan chainwatch.BlockDispatchFailure, 1)
		svc := chainwatch.New(network, chain,
			chainwatch.WithCheckpointStorage(checkpoint),
			chainwatch.WithPollInterval(time.Hour),
			chainwatch.WithDispatchFailureHandler(func(_ context.Context, f chainwatch.BlockDispatchFailure) {
				failures <- f
			}),
		)

		_, err := svc.Start(t.Context())
		require.NoError(t, err)

		select {
		case f := <-failures:
			assert.Equal(t, network, f.Network)
			assert.Equal(t, uint64(99), f.Height)
			require.Len(t, f.Errors, 1)
			assert.ErrorIs(t, f.Errors[0], blockscan.ErrSourceUnavailable)
		case <-time.After(time.Second):
			require.FailNow(t, "dispatch failure handler was not called")
		}

		svc.Close()
	})

	t.Run("fetches through the retry policy", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		retrier := retryMocks.NewRetry(t)

		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(7), nil).Once()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(7)).Return(blockscan.Snapshot{Height: 7}, nil)
		retrier.EXPECT().Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, operation func() error) error {
				return operation()
			})

		svc := chainwatch.New(network, chain,
			chainwatch.WithRetry(retrier),
			chainwatch.WithPollInterval(time.Hour),
		)

		blocksCh, err := svc.Start(t.Context())
		require.NoError(t, err)

		assert.Equal(t, uint64(7), receive(t, blocksCh).Snapshot.Height)

		svc.Close()
	})

	t.Run("head read failure keeps polling", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)

		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(0), errors.New("node down")).Once()
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(3), nil).Once()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(3)).Return(blockscan.Snapshot{Height: 3}, nil)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(3), nil).Maybe()

		svc := chainwatch.New(network, chain, chainwatch.WithPollInterval(10*time.Millisecond))

		blocksCh, err := svc.Start(t.Context())
		require.NoError(t, err)

		assert.Equal(t, uint64(3), receive(t, blocksCh).Snapshot.Height)

		svc.Close()
	})

	t.Run("checkpoint load error", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		checkpoint := chainwatchMocks.NewCheckpointStorage(t)
		loadErr := errors.New("redis down")

		checkpoint.EXPECT().LoadLatestCheckpoint(mock.Anything, network).Return(uint64(0), loadErr)

		svc := chainwatch.New(network, chain, chainwatch.WithCheckpointStorage(checkpoint))

		blocksCh, err := svc.Start(t.Context())

		assert.ErrorIs(t, err, loadErr)
		assert.Nil(t, blocksCh)
	})

	t.Run("already started error", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(1), nil).Maybe()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(1)).Return(blockscan.Snapshot{Height: 1}, nil).Maybe()

		svc := chainwatch.New(network, chain, chainwatch.WithPollInterval(time.Hour))

		_, err := svc.Start(t.Context())
		require.NoError(t, err)

		_, err = svc.Start(t.Context())
		assert.ErrorIs(t, err, chainwatch.ErrServiceAlreadyStarted)

		svc.Close()
	})
}

func TestService_Close(t *testing.T) {
	t.Run("close without start is a no-op", func(t *testing.T) {
		svc := chainwatch.New(network, chainwatchMocks.NewChain(t))

		assert.NotPanics(t, svc.Close)
	})

	t.Run("can be restarted after close", func(t *testing.T) {
		chain := chainwatchMocks.NewChain(t)
		chain.EXPECT().LatestHeight(mock.Anything).Return(uint64(1), nil).Maybe()
		chain.EXPECT().FetchSnapshot(mock.Anything, uint64(1)).Return(blockscan.Snapshot{Height: 1}, nil).Maybe()

		svc := chainwatch.New(network, chain, chainwatch.WithPollInterval(time.Hour))

		_, err := svc.Start(t.Context())
		require.NoError(t, err)
		svc.Close()

		_, err = svc.Start(t.Context())
		require.NoError(t, err)
		svc.Close()
	})
}

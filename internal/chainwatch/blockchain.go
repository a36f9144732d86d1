package chainwatch

import (
	"context"

	"github.com/gabapcia/taowatch/internal/blockscan"
)

// Chain is a source of block snapshots addressed by height.
type Chain interface {
	// LatestHeight returns the height of the current chain head.
	LatestHeight(ctx context.Context) (uint64, error)

	// FetchSnapshot retrieves the decoded block at height.
	FetchSnapshot(ctx context.Context, height uint64) (blockscan.Snapshot, error)
}

// ObservedBlock is a block snapshot fetched by the watcher, tagged with the
// network it was read from.
type ObservedBlock struct {
	Network  string
	Snapshot blockscan.Snapshot
}

// BlockDispatchFailure reports a height whose snapshot could not be fetched.
//
// Errors holds every error seen while fetching it, including the ones
// returned by retry attempts. Use errors.Join(failure.Errors...) to log them
// as a single value.
type BlockDispatchFailure struct {
	Network string
	Height  uint64
	Errors  []error
}

// fetchSnapshot reads the snapshot at height, going through the configured
// retry policy when there is one.
func (s *service) fetchSnapshot(ctx context.Context, height uint64) (blockscan.Snapshot, error) {
	if s.retry == nil {
		return s.chain.FetchSnapshot(ctx, height)
	}

	var snap blockscan.Snapshot
	err := s.retry.Execute(ctx, func() error {
		var err error
		snap, err = s.chain.FetchSnapshot(ctx, height)
		return err
	})

	return snap, err
}

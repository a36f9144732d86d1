package chainwatch

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved yet for the requested network.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists and retrieves the last dispatched block height
// for each network.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest checkpoint for network,
	// overwriting any previous value.
	SaveCheckpoint(ctx context.Context, network string, height uint64) error

	// LoadLatestCheckpoint returns the most recent height saved for network,
	// or ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error)
}

// nopCheckpoint keeps no state. Every start begins at the chain head.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}

var _ CheckpointStorage = nopCheckpoint{}

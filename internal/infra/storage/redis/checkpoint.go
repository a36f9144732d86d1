package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/taowatch/internal/chainwatch"

	"github.com/redis/go-redis/v9"
)

// chainwatchKeyPrefix is the namespace prefix for all keys related to the chainwatch checkpointing system.
const chainwatchKeyPrefix = "chainwatch"

// chainwatchCheckpointKey constructs the Redis key used to store the latest dispatched block height
// for a specific network. The format is:
//
//	"chainwatch:checkpoint:<network>"
func chainwatchCheckpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", chainwatchKeyPrefix, network)
}

// SaveCheckpoint persists the most recent block height dispatched for a given network.
//
// The checkpoint is stored as a decimal string with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height uint64) error {
	key := chainwatchCheckpointKey(network)
	return c.conn.Set(ctx, key, strconv.FormatUint(height, 10), 0).Err()
}

// LoadLatestCheckpoint retrieves the most recently saved checkpoint for the given network.
//
// If no checkpoint exists yet, it returns chainwatch.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error) {
	key := chainwatchCheckpointKey(network)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainwatch.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid checkpoint %q for network %s: %w", val, network, err)
	}

	return height, nil
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ chainwatch.CheckpointStorage = new(client)

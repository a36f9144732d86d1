package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/taowatch/internal/blockproc"

	"github.com/redis/go-redis/v9"
)

const (
	// blockprocKeyPrefix is the Redis key namespace used to store delivery
	// idempotency entries. All keys will be prefixed with this value.
	blockprocKeyPrefix = "blockproc"

	// blockprocIdempotencyDone is the terminal value stored in Redis to indicate that
	// a block's notifications were delivered and must not be delivered again.
	blockprocIdempotencyDone = "done"

	// blockprocDoneRetention bounds how long a "done" marker is kept. Heights
	// older than the chainwatch checkpoint are never replayed.
	blockprocDoneRetention = 7 * 24 * time.Hour
)

// blockprocIdempotencyKey builds the Redis key used to track delivery
// of a given block height in a specific network.
func blockprocIdempotencyKey(network string, height uint64) string {
	return fmt.Sprintf("%s:idempotency:%s:%d", blockprocKeyPrefix, network, height)
}

// ClaimBlock attempts to claim exclusive rights to deliver the notifications of a block.
//
// Behavior:
//   - If the key is already marked as "done", it returns ErrAlreadyFinished.
//   - If the key exists but is not "done", it returns ErrStillInProgress.
//   - Otherwise, it sets an empty string value with TTL to reserve the claim.
func (c *client) ClaimBlock(ctx context.Context, network string, height uint64, ttl time.Duration) error {
	key := blockprocIdempotencyKey(network, height)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == blockprocIdempotencyDone {
		return blockproc.ErrAlreadyFinished
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return blockproc.ErrStillInProgress
	}

	return nil
}

// MarkBlockDelivered marks the given block as delivered by setting
// the Redis key value to "done" for blockprocDoneRetention.
func (c *client) MarkBlockDelivered(ctx context.Context, network string, height uint64) error {
	key := blockprocIdempotencyKey(network, height)
	return c.conn.Set(ctx, key, blockprocIdempotencyDone, blockprocDoneRetention).Err()
}

// Ensure the client satisfies the IdempotencyGuard interface at compile time.
var _ blockproc.IdempotencyGuard = new(client)

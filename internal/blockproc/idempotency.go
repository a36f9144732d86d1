package blockproc

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyFinished is returned by ClaimBlock when the block's
	// notifications were already delivered.
	ErrAlreadyFinished = errors.New("block already delivered")

	// ErrStillInProgress is returned by ClaimBlock when another worker holds
	// an unexpired claim on the block.
	ErrStillInProgress = errors.New("block delivery still in progress")
)

// IdempotencyGuard ensures the notifications of a block are delivered once,
// even when several instances run or a restart replays a height.
//
// A claim is a lease: if it is not finalized with MarkBlockDelivered before
// ttl elapses, the block may be claimed again.
type IdempotencyGuard interface {
	// ClaimBlock acquires the right to deliver the block at height.
	// It returns ErrAlreadyFinished or ErrStillInProgress when the block must
	// be skipped.
	ClaimBlock(ctx context.Context, network string, height uint64, ttl time.Duration) error

	// MarkBlockDelivered finalizes the claim. The block is never claimed again.
	MarkBlockDelivered(ctx context.Context, network string, height uint64) error
}

// nopGuard lets every block through.
type nopGuard struct{}

func (nopGuard) ClaimBlock(context.Context, string, uint64, time.Duration) error {
	return nil
}

func (nopGuard) MarkBlockDelivered(context.Context, string, uint64) error {
	return nil
}

var _ IdempotencyGuard = nopGuard{}

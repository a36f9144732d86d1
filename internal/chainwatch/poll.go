package chainwatch

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/taowatch/internal/pkg/logger"
	"github.com/gabapcia/taowatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/taowatch/internal/pkg/x/chflow"
)

// cursor is the last height dispatched downstream. An unset cursor makes the
// next cycle start at the chain head.
type cursor struct {
	height uint64
	set    bool
}

func (s *service) loadCursor(ctx context.Context) (cursor, error) {
	height, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, s.network)
	if errors.Is(err, ErrNoCheckpointFound) {
		return cursor{}, nil
	}
	if err != nil {
		return cursor{}, err
	}

	return cursor{height: height, set: true}, nil
}

// heightRange is the inclusive span of heights one cycle processes.
// Skipped counts the pending heights left out by the catch-up bound.
type heightRange struct {
	from, to uint64
	skipped  uint64
}

// catchUpRange returns the heights to process given the cursor and the head.
// The boolean is false when there is nothing new.
func catchUpRange(cur cursor, head, maxCatchUp uint64) (heightRange, bool) {
	from := head
	if cur.set {
		from = cur.height + 1
	}
	if from > head {
		return heightRange{}, false
	}

	r := heightRange{from: from, to: head}
	if pending := head - from + 1; pending > maxCatchUp {
		r.skipped = pending - maxCatchUp
		r.from = head - maxCatchUp + 1
	}

	return r, true
}

// poll runs one cycle right away and then one per poll interval until ctx is done.
func (s *service) poll(ctx context.Context, cur cursor, out chan<- ObservedBlock) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		cur = s.runCycle(ctx, cur, out)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// runCycle dispatches every new height in order and returns the advanced
// cursor. A height whose snapshot cannot be fetched aborts the cycle without
// moving the cursor, so the next cycle tries it again. The checkpoint
// follows the hand-off to out, not the outcome of handling the block.
func (s *service) runCycle(ctx context.Context, cur cursor, out chan<- ObservedBlock) cursor {
	head, err := s.chain.LatestHeight(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn(ctx, "failed to read chain head",
				"block.network", s.network,
				"error", err,
			)
		}
		return cur
	}

	r, ok := catchUpRange(cur, head, s.maxCatchUp)
	if !ok {
		return cur
	}

	if r.skipped > 0 {
		logger.Warn(ctx, "heights skipped beyond catch-up window",
			"block.network", s.network,
			"block.skipped", r.skipped,
			"block.resume_height", r.from,
		)
	}

	for height := r.from; height <= r.to; height++ {
		snap, err := s.fetchSnapshot(ctx, height)
		if err != nil {
			if ctx.Err() != nil {
				return cur
			}

			s.dispatchFailureHandler(ctx, BlockDispatchFailure{
				Network: s.network,
				Height:  height,
				Errors:  retry.Unwrap(err),
			})
			return cur
		}

		if ok := chflow.Send(ctx, out, ObservedBlock{Network: s.network, Snapshot: snap}); !ok {
			return cur
		}

		cur = cursor{height: height, set: true}
		if err := s.checkpointStorage.SaveCheckpoint(ctx, s.network, height); err != nil {
			logger.Error(ctx, "failed to save checkpoint",
				"block.network", s.network,
				"block.height", height,
				"error", err,
			)
		}
	}

	return cur
}

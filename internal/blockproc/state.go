package blockproc

import (
	"time"

	"github.com/gabapcia/taowatch/internal/blockscan"

	"github.com/google/uuid"
)

// blockRun tracks a single handling of a block, from claim to delivery.
type blockRun struct {
	id        string // UUIDv7, attached to logs and the span
	network   string
	height    uint64
	startedAt time.Time
	skipped   bool
	bundle    blockscan.Bundle
	delivered int
	failed    int
}

func newBlockRun(network string, height uint64) blockRun {
	return blockRun{
		id:        uuid.Must(uuid.NewV7()).String(),
		network:   network,
		height:    height,
		startedAt: time.Now().UTC(),
	}
}

// recordDeliveries counts the outcome of each delivery attempt.
func (r *blockRun) recordDeliveries(errs []error) {
	for _, err := range errs {
		if err != nil {
			r.failed++
			continue
		}
		r.delivered++
	}
}

func (r blockRun) result() BlockResult {
	return BlockResult{
		RunID:     r.id,
		Network:   r.network,
		Height:    r.height,
		Skipped:   r.skipped,
		Bundle:    r.bundle,
		Delivered: r.delivered,
		Failed:    r.failed,
		Elapsed:   time.Since(r.startedAt),
	}
}

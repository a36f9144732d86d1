package blockproc

import (
	"context"
	"time"

	"github.com/gabapcia/taowatch/internal/blockscan"
)

// Notifier delivers a rendered notification to its sink.
type Notifier interface {
	Notify(ctx context.Context, n blockscan.Notification) error
}

// CacheRefresher rebuilds the enrichment tables in the background.
type CacheRefresher interface {
	// Trigger requests a refresh without waiting for it.
	Trigger()
}

type nopRefresher struct{}

func (nopRefresher) Trigger() {}

// BlockResult summarizes the handling of one block.
type BlockResult struct {
	RunID     string
	Network   string
	Height    uint64
	Skipped   bool
	Bundle    blockscan.Bundle
	Delivered int
	Failed    int
	Elapsed   time.Duration
}

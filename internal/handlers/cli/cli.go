package cli

import (
	"context"
	"os"

	"github.com/gabapcia/taowatch/internal/blockproc"
	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/chainwatch"

	"github.com/urfave/cli/v3"
)

// Refresher rebuilds the enrichment cache, either once or on its schedule.
type Refresher interface {
	Start(ctx context.Context) error
	Close()
	Refresh(ctx context.Context) error
}

// Dependencies are the collaborators the commands run against.
type Dependencies struct {
	// Network names the chain in delivered results.
	Network string

	// Pipeline is the streaming coordinator run by `start`.
	Pipeline blockproc.Service

	// Delivery handles one-off blocks for `inspect --deliver`. It is expected
	// to run without an idempotency guard so a block can be re-sent.
	Delivery blockproc.Service

	Chain     chainwatch.Chain
	Inspector blockscan.Service
	Refresher Refresher
}

// Run initializes and executes the taowatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts the block pipeline and the scheduled cache refresh.
//   - `inspect`: Inspects a single block, printing or delivering its reports.
//   - `refresh`: Rebuilds the enrichment cache once.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "taowatch",
		Description:           "Watches Bittensor blocks for coldkey swaps, subnet dissolutions and senate votes.",
		Usage:                 "taowatch [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(deps.Pipeline, deps.Refresher),
			inspectBlockCommand(deps),
			refreshCacheCommand(deps.Refresher),
		},
	}
}

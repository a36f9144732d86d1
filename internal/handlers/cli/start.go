package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/taowatch/internal/blockproc"

	"github.com/urfave/cli/v3"
)

// startPipelineCommand returns a CLI command that starts the block pipeline
// together with the scheduled enrichment refresh.
//
// Usage example:
//
//	taowatch start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or its
// context is canceled.
func startPipelineCommand(bp blockproc.Service, refresher Refresher) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts polling the chain, delivering governance reports and refreshing the enrichment cache.",
		Usage:       "Runs the pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := refresher.Start(ctx); err != nil {
				return err
			}
			defer refresher.Close()

			if err := bp.Start(ctx); err != nil {
				return err
			}
			defer bp.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}

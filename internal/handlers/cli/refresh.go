package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// refreshCacheCommand returns a CLI command that rebuilds the validator and
// subnet owner tables once.
//
// Usage example:
//
//	taowatch refresh
func refreshCacheCommand(refresher Refresher) *cli.Command {
	return &cli.Command{
		Name:        "refresh",
		Description: "Rebuilds the validator and subnet owner lookup tables from the registry.",
		Usage:       "Refreshes the enrichment cache once and exits.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return refresher.Refresh(ctx)
		},
	}
}

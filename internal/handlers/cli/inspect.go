package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/gabapcia/taowatch/internal/blockproc"
	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/chainwatch"

	"github.com/urfave/cli/v3"
)

type notificationView struct {
	Category    blockscan.Category `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Color       int                `json:"color"`
	Fields      []blockscan.Field  `json:"fields"`
}

type bundleView struct {
	Height        uint64             `json:"height"`
	CacheStale    bool               `json:"cache_stale"`
	Notifications []notificationView `json:"notifications"`
	Errors        []string           `json:"errors,omitempty"`
}

type deliveryView struct {
	RunID     string     `json:"run_id"`
	Network   string     `json:"network"`
	Skipped   bool       `json:"skipped"`
	Delivered int        `json:"delivered"`
	Failed    int        `json:"failed"`
	Elapsed   string     `json:"elapsed"`
	Bundle    bundleView `json:"bundle"`
}

func newBundleView(bundle blockscan.Bundle, err error) bundleView {
	view := bundleView{
		Height:        bundle.Height,
		CacheStale:    bundle.CacheStale,
		Notifications: make([]notificationView, 0, len(bundle.Notifications)),
	}
	for _, n := range bundle.Notifications {
		view.Notifications = append(view.Notifications, notificationView{
			Category:    n.Category,
			Title:       n.Title,
			Description: n.Description,
			Color:       n.Color,
			Fields:      n.Fields,
		})
	}

	for _, e := range unjoin(err) {
		view.Errors = append(view.Errors, e.Error())
	}

	return view
}

func newDeliveryView(result blockproc.BlockResult) deliveryView {
	return deliveryView{
		RunID:     result.RunID,
		Network:   result.Network,
		Skipped:   result.Skipped,
		Delivered: result.Delivered,
		Failed:    result.Failed,
		Elapsed:   result.Elapsed.String(),
		Bundle:    newBundleView(result.Bundle, nil),
	}
}

// unjoin flattens an errors.Join tree one level deep.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// inspectBlockCommand returns a CLI command that inspects one block and prints
// the rendered reports as JSON, or delivers them with --deliver.
//
// Usage example:
//
//	taowatch inspect --height 4920351
//	taowatch inspect --height 4920351 --deliver
//
// Branch failures are listed in the output and make the command fail after
// the partial bundle is printed.
func inspectBlockCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "inspect",
		Description: "Inspects a single block and prints or delivers its governance reports.",
		Usage:       "Fetches the block at --height and renders its reports.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "height",
				Usage:    "Height of the block to inspect",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "deliver",
				Usage: "Deliver the reports instead of printing them",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out := c.Root().Writer

			snap, err := deps.Chain.FetchSnapshot(ctx, c.Uint64("height"))
			if err != nil {
				return err
			}

			if c.Bool("deliver") {
				result, err := deps.Delivery.Handle(ctx, chainwatch.ObservedBlock{
					Network:  deps.Network,
					Snapshot: snap,
				})
				if werr := writeJSON(out, newDeliveryView(result)); werr != nil {
					return errors.Join(err, werr)
				}
				return err
			}

			bundle, err := deps.Inspector.Inspect(ctx, snap)
			if werr := writeJSON(out, newBundleView(bundle, err)); werr != nil {
				return errors.Join(err, werr)
			}
			return err
		},
	}
}

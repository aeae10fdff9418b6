// cmd/svs/watch.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tamzrod/svs/internal/poller"
	"github.com/tamzrod/svs/internal/service"
)

func newWatchCmd(o *options) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw the status table on every interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, o, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "time between scans")
	return cmd
}

func runWatch(ctx context.Context, o *options, interval time.Duration) error {
	root := o.root()

	p, err := poller.New(poller.Config{Root: root, Interval: interval}, service.Scanner{Log: o.log})
	if err != nil {
		return err
	}

	table := o.table(os.Stdout)
	screen := termenv.NewOutput(os.Stdout)
	redraw := term.IsTerminal(int(os.Stdout.Fd()))

	out := make(chan poller.PollResult)
	go p.Run(ctx, out)

	for {
		select {
		case <-ctx.Done():
			return nil

		case res := <-out:
			// A failed pass is reported and the next tick retries from scratch.
			if res.Err != nil {
				o.log.Error("scan failed", zap.String("root", root), zap.Error(res.Err))
				continue
			}

			if redraw {
				screen.ClearScreen()
			}
			if err := table.Render(res.Listing, res.At); err != nil {
				return err
			}
		}
	}
}

// cmd/svs/export.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/svs/internal/poller"
	"github.com/tamzrod/svs/internal/writer"
)

func newExportCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Publish service status blocks to the configured endpoint",
		Long: `Publish one status block per service to the endpoint named by
svs.export.endpoint in the config file, re-scanning every interval_ms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runExport(ctx, o)
		},
	}
}

func runExport(ctx context.Context, o *options) error {
	if !o.cfg.SVS.Export.Enabled() {
		return errors.WithHint(
			errors.New("export: no endpoint configured"),
			"set svs.export.endpoint in the config file",
		)
	}

	root := o.root()

	// ---- poller ----
	p, err := poller.BuildExport(root, o.cfg, o.log)
	if err != nil {
		return err
	}

	// ---- writer plan + client ----
	plan, err := writer.BuildPlan(o.cfg)
	if err != nil {
		return err
	}

	cli, closeClient, err := writer.BuildEndpointClient(plan)
	if err != nil {
		return err
	}
	defer closeClient()

	w := writer.New(plan, cli, o.log)

	o.log.Info("export started",
		zap.String("root", root),
		zap.String("transport", plan.Transport),
		zap.String("endpoint", plan.Endpoint),
		zap.Uint16("base_slot", plan.BaseSlot),
	)

	// ---- channel between poller and writer ----
	out := make(chan poller.PollResult)
	go p.Run(ctx, out)

	for {
		select {
		case <-ctx.Done():
			o.log.Info("export stopped")
			return nil

		case res := <-out:
			if res.Err != nil {
				o.log.Warn("scan failed", zap.String("root", root), zap.Error(res.Err))
				continue
			}
			if err := w.WriteListing(res.Listing, res.At); err != nil {
				o.log.Warn("status write failed", zap.String("endpoint", plan.Endpoint), zap.Error(err))
			}
		}
	}
}

// internal/poller/builder.go
package poller

import (
	"time"

	"go.uber.org/zap"

	cfg "github.com/tamzrod/svs/internal/config"
	"github.com/tamzrod/svs/internal/service"
)

// BuildExport constructs the poller that feeds the status export.
// Assumes config has already passed Validate and Normalize.
func BuildExport(root string, c *cfg.Config, log *zap.Logger) (*Poller, error) {
	return New(
		Config{
			Root:     root,
			Interval: time.Duration(c.SVS.Export.IntervalMs) * time.Millisecond,
		},
		service.Scanner{Log: log},
	)
}

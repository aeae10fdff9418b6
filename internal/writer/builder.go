// internal/writer/builder.go
package writer

import (
	"time"

	"github.com/cockroachdb/errors"

	cfg "github.com/tamzrod/svs/internal/config"
	"github.com/tamzrod/svs/internal/writer/ingest"
	wmodbus "github.com/tamzrod/svs/internal/writer/modbus"
)

// BuildPlan converts the export config into a Plan.
// Assumes config has already passed Validate and Normalize.
func BuildPlan(c *cfg.Config) (Plan, error) {
	e := c.SVS.Export
	if !e.Enabled() {
		return Plan{}, errors.New("writer: export endpoint required")
	}

	return Plan{
		Transport: e.Transport,
		Endpoint:  e.Endpoint,
		UnitID:    e.UnitID,
		BaseSlot:  e.BaseSlot,
		Timeout:   time.Duration(e.TimeoutMs) * time.Millisecond,
		Services:  append([]string(nil), e.Services...),
	}, nil
}

// BuildEndpointClient creates the client for the plan's transport.
func BuildEndpointClient(plan Plan) (endpointClient, func() error, error) {
	switch plan.Transport {
	case "modbus", "":
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "writer: connect %s", plan.Endpoint)
		}
		return c, c.Close, nil

	case "ingest":
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, errors.Newf("writer: unsupported transport %q", plan.Transport)
	}
}

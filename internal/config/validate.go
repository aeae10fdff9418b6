// internal/config/validate.go
package config

import (
	"github.com/cockroachdb/errors"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	switch cfg.SVS.Color {
	case "", "auto", "always", "never":
	default:
		return errors.Newf("color %q: must be auto, always or never", cfg.SVS.Color)
	}

	// ------------------------------------------------------------
	// EXPORT (OPT-IN)
	// ------------------------------------------------------------

	e := cfg.SVS.Export
	if !e.Enabled() {
		if len(e.Services) > 0 {
			return errors.New("export: services are set but no endpoint is defined")
		}
		return nil
	}

	switch e.Transport {
	case "", "modbus", "ingest":
	default:
		return errors.Newf("export: transport %q: must be modbus or ingest", e.Transport)
	}

	if e.IntervalMs < 0 {
		return errors.New("export: interval_ms must be >= 0")
	}
	if e.TimeoutMs < 0 {
		return errors.New("export: timeout_ms must be >= 0")
	}

	seen := make(map[string]int)
	for i, name := range e.Services {
		if name == "" {
			return errors.Newf("export: services[%d] is empty", i)
		}
		if prev, exists := seen[name]; exists {
			return errors.Newf(
				"export: service %q pinned to slots %d and %d",
				name,
				prev,
				i,
			)
		}
		seen[name] = i
	}

	// ------------------------------------------------------------
	// REGISTER GEOMETRY
	// ------------------------------------------------------------

	// The first block must start inside the 16-bit address space.
	// Listing-order exports may still run past the end; those blocks are dropped at write time.
	const slotsPerService = 20
	last := int(e.BaseSlot) * slotsPerService
	if n := len(e.Services); n > 0 {
		last += n*slotsPerService - 1
	}
	if last > 0xFFFF {
		return errors.Newf(
			"export: base_slot=%d with %d services ends at register %d, beyond 65535",
			e.BaseSlot,
			len(e.Services),
			last,
		)
	}

	return nil
}

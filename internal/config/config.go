// internal/config/config.go
package config

type Config struct {
	SVS SVSConfig `yaml:"svs"`
}

type SVSConfig struct {
	ServiceDir string       `yaml:"service_dir"`
	Color      string       `yaml:"color"` // auto | always | never
	Export     ExportConfig `yaml:"export"`
}

// ---- EXPORT ----

// ExportConfig describes where the status block is published.
// An empty Endpoint disables export.
type ExportConfig struct {
	Transport  string `yaml:"transport"` // modbus | ingest
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	IntervalMs int    `yaml:"interval_ms"`
	TimeoutMs  int    `yaml:"timeout_ms"`

	// Services pins services to slots in order. Empty means listing order.
	Services []string `yaml:"services"`
}

// Enabled reports whether an export endpoint is configured.
func (e ExportConfig) Enabled() bool {
	return e.Endpoint != ""
}

// internal/config/normalize.go
package config

import (
	"os"
	"strings"
)

// Defaults.
const (
	DefaultServiceDir = "/var/service"
	DefaultColor      = "auto"
	DefaultTransport  = "modbus"
	DefaultIntervalMs = 1000
	DefaultTimeoutMs  = 2000

	// EnvServiceDir overrides the configured service directory.
	EnvServiceDir = "SVDIR"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.SVS.Color == "" {
		cfg.SVS.Color = DefaultColor
	}
	if cfg.SVS.ServiceDir != "" {
		cfg.SVS.ServiceDir = TrimDir(cfg.SVS.ServiceDir)
	}

	e := &cfg.SVS.Export
	if !e.Enabled() {
		return
	}
	if e.Transport == "" {
		e.Transport = DefaultTransport
	}
	if e.IntervalMs == 0 {
		e.IntervalMs = DefaultIntervalMs
	}
	if e.TimeoutMs == 0 {
		e.TimeoutMs = DefaultTimeoutMs
	}
}

// ServiceDir picks the service directory: flag, then SVDIR, then the config
// file, then the default. Trailing slashes are stripped.
func ServiceDir(flagDir string, cfg *Config) string {
	dir := flagDir
	if dir == "" {
		dir = os.Getenv(EnvServiceDir)
	}
	if dir == "" && cfg != nil {
		dir = cfg.SVS.ServiceDir
	}
	if dir == "" {
		dir = DefaultServiceDir
	}
	return TrimDir(dir)
}

// TrimDir strips trailing slashes, keeping a bare "/".
func TrimDir(dir string) string {
	trimmed := strings.TrimRight(dir, "/")
	if trimmed == "" && dir != "" {
		return "/"
	}
	return trimmed
}

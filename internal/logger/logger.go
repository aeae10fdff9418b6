// internal/logger/logger.go
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel set to "debug" enables debug logging without --verbose.
const EnvLevel = "SVS_LOG_LEVEL"

// Config returns the console config used by the CLI.
// Stdout carries the table, so logs always go to stderr.
func Config(verbose bool) zap.Config {
	level := zap.InfoLevel
	if verbose || strings.EqualFold(os.Getenv(EnvLevel), "debug") {
		level = zap.DebugLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.TimeKey = ""

	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     enc,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// New builds the CLI logger. It falls back to a no-op logger rather than
// failing the run.
func New(verbose bool) *zap.Logger {
	log, err := Config(verbose).Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

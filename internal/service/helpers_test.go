// internal/service/helpers_test.go
package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/svs/internal/status"
)

// writeService creates dir/supervise/status holding rec.
func writeService(t *testing.T, dir string, rec status.Record) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "supervise"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, status.StatusFile), status.Encode(rec), 0o644))
}

func healthy(pid uint32) status.Record {
	return status.Record{Timestamp: 1700000000, PID: pid, WantUp: true, State: status.RawUp}
}

func downWantedUp() status.Record {
	return status.Record{Timestamp: 1700000000, WantUp: true, State: status.RawDown}
}

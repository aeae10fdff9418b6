// internal/service/scan.go
package service

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/tamzrod/svs/internal/status"
)

// Scanner reads service directories. The zero value is ready to use.
// It keeps no state between calls: every pass re-reads everything from disk.
type Scanner struct {
	Log *zap.Logger
}

// Aggregate scans root with a zero Scanner.
func Aggregate(root string) (Listing, error) {
	return Scanner{}.Aggregate(root)
}

// Aggregate builds the status of every service under root, sorted by name.
// Per-service failures degrade only that entry; the pass fails only when root
// itself cannot be listed.
func (sc Scanner) Aggregate(root string) (Listing, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return Listing{}, rootUnlistable(root, err)
	}

	var out Listing
	for _, e := range entries {
		if !isServiceEntry(e) {
			continue
		}

		name := e.Name()
		svc := sc.load(filepath.Join(root, name), name)

		dir := filepath.Join(root, name)
		if hasLog(dir) {
			logSvc := sc.load(filepath.Join(dir, status.LogDir), status.LogDir)
			svc.Log = &logSvc
		}

		if len(name) > out.MaxNameLen {
			out.MaxNameLen = len(name)
		}
		out.Services = append(out.Services, svc)
	}

	sort.Slice(out.Services, func(i, j int) bool {
		return out.Services[i].Name < out.Services[j].Name
	})

	sc.logger().Debug("service directory scanned",
		zap.String("root", root),
		zap.Int("services", len(out.Services)),
	)

	return out, nil
}

// load decodes one service directory without looking for a log service.
func (sc Scanner) load(dir, name string) ServiceStatus {
	svc := ServiceStatus{Name: name}

	rec, err := status.ReadFile(filepath.Join(dir, status.StatusFile))
	if err != nil {
		sc.logger().Debug("status unavailable", zap.String("dir", dir), zap.Error(err))
		svc.Err = err
		return svc
	}

	normallyUp, err := normallyUp(dir)
	if err != nil {
		sc.logger().Warn("unable to check down file", zap.String("dir", dir), zap.Error(err))
		svc.Err = err
		return svc
	}

	svc.Record = &rec
	svc.NormallyUp = normallyUp
	return svc
}

func (sc Scanner) logger() *zap.Logger {
	if sc.Log == nil {
		return zap.NewNop()
	}
	return sc.Log
}

// normallyUp is true unless a down file exists.
func normallyUp(dir string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, status.DownFile))
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, errors.Mark(errors.Wrap(err, "stat down file"), ErrSentinelCheck)
	}
}

func hasLog(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, status.LogDir))
	return err == nil
}

// isServiceEntry accepts directories and symlinks. ReadDir never returns "." or "..".
func isServiceEntry(e fs.DirEntry) bool {
	return e.IsDir() || e.Type()&fs.ModeSymlink != 0
}

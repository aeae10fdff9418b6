// internal/service/quiet.go
package service

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/tamzrod/svs/internal/status"
)

// readBatch bounds how many entries are read before checking them,
// so a hit stops the listing early.
const readBatch = 64

// AnyDown reports whether any service under root is down while wanted up.
// Entries are visited in directory order and the scan stops at the first hit.
// A service whose status cannot be decoded does not count as down.
func AnyDown(root string) (bool, error) {
	d, err := os.Open(root)
	if err != nil {
		return false, rootUnlistable(root, err)
	}
	defer d.Close()

	for {
		entries, err := d.ReadDir(readBatch)
		for _, e := range entries {
			if !isServiceEntry(e) {
				continue
			}
			if downWanted(filepath.Join(root, e.Name())) {
				return true, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, rootUnlistable(root, err)
		}
	}
}

func downWanted(dir string) bool {
	rec, err := status.ReadFile(filepath.Join(dir, status.StatusFile))
	if err != nil {
		return false
	}
	return status.Derive(rec) == status.StateDownWanted
}

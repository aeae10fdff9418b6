// internal/service/errors.go
package service

import "github.com/cockroachdb/errors"

var (
	// ErrRootUnlistable aborts a whole pass: the service directory could not be listed.
	ErrRootUnlistable = errors.New("service: cannot list service directory")

	// ErrSentinelCheck means the down file could not be checked for a reason
	// other than absence. The entry is reported as errored.
	ErrSentinelCheck = errors.New("service: cannot check down file")
)

func rootUnlistable(root string, err error) error {
	return errors.WithHint(
		errors.Mark(errors.Wrapf(err, "list %s", root), ErrRootUnlistable),
		"set the service directory with -d or SVDIR",
	)
}

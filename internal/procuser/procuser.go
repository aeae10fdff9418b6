// internal/procuser/procuser.go
package procuser

import (
	"bufio"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
)

// Resolver maps a pid to the name of the user it runs as.
type Resolver struct {
	// ProcRoot defaults to /proc.
	ProcRoot string
	// LookupID defaults to os/user.LookupId and returns the user name.
	LookupID func(uid string) (string, error)
}

// Lookup resolves pid with the default Resolver.
func Lookup(pid int) (string, bool) {
	return Resolver{}.Lookup(pid)
}

// Lookup returns the user owning pid by its real uid.
// Any failure yields ok=false.
func (r Resolver) Lookup(pid int) (string, bool) {
	if pid <= 0 {
		return "", false
	}

	uid, ok := r.realUID(pid)
	if !ok {
		return "", false
	}

	lookup := r.LookupID
	if lookup == nil {
		lookup = lookupName
	}
	name, err := lookup(uid)
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// realUID reads the first field of the Uid: line in /proc/<pid>/status.
func (r Resolver) realUID(pid int) (string, bool) {
	root := r.ProcRoot
	if root == "" {
		root = "/proc"
	}

	f, err := os.Open(filepath.Join(root, strconv.Itoa(pid), "status"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "Uid:"))
		if len(fields) != 4 {
			return "", false
		}
		if _, err := strconv.ParseUint(fields[0], 10, 32); err != nil {
			return "", false
		}
		return fields[0], true
	}
	return "", false
}

func lookupName(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

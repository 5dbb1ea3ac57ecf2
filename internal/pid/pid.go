// Package pid keeps a single updater per user and X display: two processes
// would overwrite each other's root window name every cycle.
package pid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/rootstatus/internal/errors"
)

const filePrefix = "rootstatus"

const ErrLockFailed = errors.ErrorCode("pid_lock_failed")

func init() {
	errors.Register(ErrLockFailed, "Failed to lock PID file")
}

// Lock is a PID file guarded by an exclusive advisory lock.
type Lock struct {
	path string
	fd   int
}

// New returns the lock for display inside dir, or inside os.TempDir when
// dir is empty. The file name carries the uid so users sharing a temp dir
// never contend for the same file.
func New(dir, display string) *Lock {
	if dir == "" {
		dir = os.TempDir()
	}

	name := fmt.Sprintf("%s-%d-%s.pid", filePrefix, os.Getuid(), displayTag(display))

	return &Lock{path: filepath.Join(dir, name), fd: -1}
}

// Path returns the location of the lock file.
func (l *Lock) Path() string {
	return l.path
}

func displayTag(display string) string {
	if display == "" {
		return "default"
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			return r
		default:
			return '_'
		}
	}, display)
}

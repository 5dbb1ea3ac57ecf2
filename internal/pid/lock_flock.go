//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package pid

import (
	"bytes"
	"os"
	"strconv"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"golang.org/x/sys/unix"
)

// Acquire locks the file and records the current PID in it. The kernel
// drops the lock when the process exits, so a file left behind by a killed
// updater never blocks the next one, whatever PID it names. While another
// process holds the lock Acquire fails with ErrAlreadyRunning carrying the
// holder's PID (0 when unreadable).
func (l *Lock) Acquire() error {
	errFactory := errors.New()

	fd, err := unix.Open(l.path, unix.O_RDWR|unix.O_CREAT|unix.O_CLOEXEC, 0o600)
	if err != nil {
		return errFactory.Wrap(ErrLockFailed, &os.PathError{Op: "open", Path: l.path, Err: err})
	}

	if err := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		holder := readHolder(fd)
		unix.Close(fd)
		if errors.Is(err, unix.EWOULDBLOCK) {
			return errFactory.WithData(errors.ErrAlreadyRunning, holder)
		}
		return errFactory.Wrap(ErrLockFailed, &os.PathError{Op: "flock", Path: l.path, Err: err})
	}

	// The descriptor stays open for the life of the process.
	l.fd = fd

	if err := unix.Ftruncate(fd, 0); err != nil {
		return errFactory.Wrap(ErrLockFailed, &os.PathError{Op: "truncate", Path: l.path, Err: err})
	}

	if _, err := unix.Pwrite(fd, []byte(strconv.Itoa(os.Getpid())), 0); err != nil {
		return errFactory.Wrap(ErrLockFailed, &os.PathError{Op: "write", Path: l.path, Err: err})
	}

	return nil
}

func readHolder(fd int) int {
	buf := make([]byte, 32)

	n, err := unix.Pread(fd, buf, 0)
	if err != nil || n == 0 {
		return 0
	}

	pid, err := strconv.Atoi(string(bytes.TrimSpace(buf[:n])))
	if err != nil || pid <= 0 {
		return 0
	}

	return pid
}

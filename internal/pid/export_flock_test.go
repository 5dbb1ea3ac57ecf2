//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package pid

import "golang.org/x/sys/unix"

// Release drops the lock held by l.
func Release(l *Lock) {
	if l.fd >= 0 {
		unix.Close(l.fd)
		l.fd = -1
	}
}

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package pid

// Acquire is a no-op where advisory file locks are unavailable.
func (*Lock) Acquire() error {
	return nil
}

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package pid_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/pid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acquire(t *testing.T, l *pid.Lock) error {
	t.Helper()

	err := l.Acquire()
	t.Cleanup(func() { pid.Release(l) })

	return err
}

func TestAcquireWritesPID(t *testing.T) {
	l := pid.New(t.TempDir(), ":0")
	require.NoError(t, acquire(t, l))

	b, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(b))
}

func TestAcquireWhileHeld(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, acquire(t, pid.New(dir, ":0")))

	err := acquire(t, pid.New(dir, ":0"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAlreadyRunning))
	assert.Contains(t, err.Error(), strconv.Itoa(os.Getpid()))
}

func TestAcquireIgnoresStaleFileNamingLiveProcess(t *testing.T) {
	l := pid.New(t.TempDir(), ":0")
	// PID 1 is always alive, but it does not hold the lock.
	require.NoError(t, os.WriteFile(l.Path(), []byte("1"), 0o600))

	require.NoError(t, acquire(t, l))

	b, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(b))
}

func TestAcquireAfterRelease(t *testing.T) {
	dir := t.TempDir()
	first := pid.New(dir, ":0")
	require.NoError(t, acquire(t, first))
	pid.Release(first)

	assert.NoError(t, acquire(t, pid.New(dir, ":0")))
}

func TestAcquireSeparateDisplays(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, acquire(t, pid.New(dir, ":0")))
	assert.NoError(t, acquire(t, pid.New(dir, ":1")))
}

func TestAcquireMissingDirectory(t *testing.T) {
	err := acquire(t, pid.New(filepath.Join(t.TempDir(), "missing"), ":0"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, pid.ErrLockFailed))
	assert.False(t, errors.HasCode(err, errors.ErrAlreadyRunning))
}

func TestNewPath(t *testing.T) {
	l := pid.New("", "localhost:10.0")
	assert.Equal(t, os.TempDir(), filepath.Dir(l.Path()))

	base := filepath.Base(l.Path())
	assert.True(t, strings.HasPrefix(base, "rootstatus-"+strconv.Itoa(os.Getuid())+"-"))
	assert.True(t, strings.HasSuffix(base, "-localhost_10.0.pid"))

	assert.NotEqual(t, pid.New("", ":0").Path(), pid.New("", ":1").Path())
	assert.Contains(t, pid.New("", "").Path(), "-default.pid")
}

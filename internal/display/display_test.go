package display_test

import (
	"io"
	"testing"

	"codeberg.org/mutker/rootstatus/internal/display"
	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectWithoutServer(t *testing.T) {
	t.Setenv("DISPLAY", "")

	d, err := display.Connect(logger.New(io.Discard))
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, errors.HasCode(err, display.ErrConnectFailed))
	assert.Contains(t, err.Error(), "Can't connect to an X server")
}

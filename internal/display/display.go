// Package display owns the X server connection and writes the root window
// name that window managers such as dwm render as their status text.
package display

import (
	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Display is a connection to the X server named by $DISPLAY together with
// the root window of its default screen.
type Display struct {
	change propertyChanger
	root   xproto.Window
	logger logger.Logger
}

// propertyChanger issues a checked ChangeProperty request and returns the
// server's reply.
type propertyChanger func(mode byte, window xproto.Window, property, typ xproto.Atom, format byte, data []byte) error

func checkedChanger(conn *xgb.Conn) propertyChanger {
	return func(mode byte, window xproto.Window, property, typ xproto.Atom, format byte, data []byte) error {
		return xproto.ChangePropertyChecked(conn, mode, window, property, typ, format, uint32(len(data)), data).Check()
	}
}

// Connect opens the default display. There is no retry; a missing server is
// an operator error.
func Connect(log logger.Logger) (*Display, error) {
	errFactory := errors.New()

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errFactory.Wrap(ErrConnectFailed, err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, errFactory.New(ErrNoScreen)
	}

	log.Debug().
		Uint32("root", uint32(screen.Root)).
		Uint16("width", screen.WidthInPixels).
		Uint16("height", screen.HeightInPixels).
		Msg("Connected to X server")

	return &Display{change: checkedChanger(conn), root: screen.Root, logger: log}, nil
}

// Publish replaces WM_NAME on the root window with text as an 8-bit STRING
// and waits for the server to acknowledge the request.
func (d *Display) Publish(text string) error {
	err := d.change(xproto.PropModeReplace, d.root, xproto.AtomWmName, xproto.AtomString, 8, []byte(text))
	if err != nil {
		return errors.New().Wrap(ErrPublishRejected, err)
	}

	d.logger.Debug().Str("name", text).Msg("Root window name set")

	return nil
}

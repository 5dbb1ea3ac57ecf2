package display

import "codeberg.org/mutker/rootstatus/internal/errors"

const (
	ErrConnectFailed   = errors.ErrorCode("display_connect_failed")
	ErrNoScreen        = errors.ErrorCode("display_no_screen")
	ErrPublishRejected = errors.ErrorCode("display_publish_rejected")
)

func init() {
	errors.Register(ErrConnectFailed, "Can't connect to an X server")
	errors.Register(ErrNoScreen, "X server reports no usable screen")
	errors.Register(ErrPublishRejected, "Couldn't set X server's root window name")
}

//go:build !linux && !openbsd

package sensors

import "codeberg.org/mutker/rootstatus/internal/errors"

type emptyBus struct{}

// DefaultBus returns a bus without devices; the temperature reads as not
// found on platforms without a supported sensor interface.
func DefaultBus() Bus {
	return emptyBus{}
}

func (emptyBus) DeviceName(int) (string, error) {
	return "", errors.New().New(ErrNoDevice)
}

func (emptyBus) Temperature(int) (int64, error) {
	return 0, errors.New().New(ErrNoDevice)
}

//go:build openbsd

package power

import (
	"os"
	"unsafe"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"golang.org/x/sys/unix"
)

// APM_IOC_GETPOWER, _IOR('A', 3, struct apm_power_info)
const apmIOCGetPower = 0x40204103

type apmDevice struct {
	fd     int
	path   string
	logger logger.Logger
}

// Open opens the APM device read-only. The descriptor is held until Close.
func Open(path string, log logger.Logger) (Reader, error) {
	errFactory := errors.New()

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errFactory.Wrap(ErrDeviceOpen, &os.PathError{Op: "open", Path: path, Err: err})
	}

	log.Debug().Str("device", path).Msg("APM device opened")

	return &apmDevice{fd: fd, path: path, logger: log}, nil
}

func (d *apmDevice) Read() (Status, error) {
	errFactory := errors.New()

	var info apmPowerInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), apmIOCGetPower, uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return UnknownStatus, errFactory.Wrap(ErrQueryFailed, errno)
	}

	d.logger.Debug().
		Uint8("battery_state", info.BatteryState).
		Uint8("ac_state", info.ACState).
		Uint8("battery_life", info.BatteryLife).
		Uint32("minutes_left", info.MinutesLeft).
		Msg("APM power info")

	return info.status(), nil
}

package power

import "codeberg.org/mutker/rootstatus/internal/errors"

const (
	ErrDeviceOpen  = errors.ErrorCode("power_device_open_failed")
	ErrQueryFailed = errors.ErrorCode("power_query_failed")
	ErrNoBattery   = errors.ErrorCode("power_no_battery")
)

func init() {
	errors.Register(ErrDeviceOpen, "Failed to open power device")
	errors.Register(ErrQueryFailed, "Power status query failed")
	errors.Register(ErrNoBattery, "No battery found")
}

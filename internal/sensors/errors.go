package sensors

import "codeberg.org/mutker/rootstatus/internal/errors"

const (
	// Enumeration
	ErrBusy     = errors.ErrorCode("sensors_device_busy")
	ErrNoDevice = errors.ErrorCode("sensors_no_device")

	// Lookup
	ErrSensorNotFound = errors.ErrorCode("sensors_sensor_not_found")
	ErrReadFailed     = errors.ErrorCode("sensors_read_failed")
)

func init() {
	errors.Register(ErrBusy, "Sensor device busy")
	errors.Register(ErrNoDevice, "No such sensor device")
	errors.Register(ErrSensorNotFound, "CPU temperature sensor not found")
	errors.Register(ErrReadFailed, "Failed to read sensor")
}

//go:build linux

package sensors

// DefaultBus returns the hwmon sysfs bus. Devices are named after the hwmon
// driver (coretemp, k10temp), not cpu0; set ROOTSTATUS_SENSOR_DEVICE to the
// chip to read.
func DefaultBus() Bus {
	return newHwmonBus(hwmonRoot)
}

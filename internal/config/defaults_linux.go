//go:build linux

package config

// DefaultSensorDevice is the hwmon chip name of Intel CPUs. AMD machines
// report k10temp and need ROOTSTATUS_SENSOR_DEVICE.
const DefaultSensorDevice = "coretemp"

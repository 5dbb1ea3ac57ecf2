//go:build !linux

package config

// DefaultSensorDevice is the OpenBSD name of the first CPU's sensor device.
const DefaultSensorDevice = "cpu0"

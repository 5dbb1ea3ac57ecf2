package sensors

// Celsius is a temperature in whole degrees Celsius.
type Celsius int

// Bus enumerates hardware sensor devices by index.
//
// DeviceName returns ErrBusy (as a domain error code) when the index is
// temporarily unavailable and ErrNoDevice once the index is past the last
// device. Temperature returns the device's first temperature reading in
// micro-kelvin.
type Bus interface {
	DeviceName(index int) (string, error)
	Temperature(index int) (int64, error)
}

// Reader returns the current CPU temperature.
type Reader interface {
	Read() (Celsius, error)
}

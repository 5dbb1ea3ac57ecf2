package sensors

import (
	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
)

const (
	microKelvinAtZeroCelsius = 273_150_000
	microKelvinPerKelvin     = 1_000_000

	// maxDevices bounds a scan on a bus that never reports ErrNoDevice.
	maxDevices = 1024
)

// FromMicroKelvin converts a raw reading to whole degrees. It floors rather
// than truncates toward zero: 273149999 µK is -0.000001°C and must render as
// -1, not 0. Both agree at and above 0°C.
func FromMicroKelvin(raw int64) Celsius {
	d := raw - microKelvinAtZeroCelsius
	q := d / microKelvinPerKelvin
	if d%microKelvinPerKelvin < 0 {
		q--
	}

	return Celsius(q)
}

// ToMicroKelvin converts millidegrees Celsius, as reported by Linux hwmon,
// to micro-kelvin.
func ToMicroKelvin(milliCelsius int64) int64 {
	return milliCelsius*1000 + microKelvinAtZeroCelsius
}

type scanner struct {
	bus    Bus
	device string
	logger logger.Logger
}

// NewReader returns a Reader that rescans bus on every Read and selects the
// device whose name equals device.
func NewReader(bus Bus, device string, log logger.Logger) Reader {
	return &scanner{bus: bus, device: device, logger: log}
}

// Read scans for the device. When it is missing, Read returns 0 together
// with ErrSensorNotFound; the value alone cannot tell that apart from 0°C.
func (s *scanner) Read() (Celsius, error) {
	errFactory := errors.New()

	index, err := s.find()
	if err != nil {
		return 0, err
	}

	raw, err := s.bus.Temperature(index)
	if err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	return FromMicroKelvin(raw), nil
}

func (s *scanner) find() (int, error) {
	errFactory := errors.New()

	for i := 0; i < maxDevices; i++ {
		name, err := s.bus.DeviceName(i)
		switch {
		case err == nil:
		case errors.HasCode(err, ErrBusy):
			s.logger.Debug().Int("index", i).Msg("Sensor device busy, skipping")
			continue
		case errors.HasCode(err, ErrNoDevice):
			return 0, errFactory.WithData(ErrSensorNotFound, s.device)
		default:
			s.logger.Debug().Err(err).Int("index", i).Msg("Sensor device unreadable, skipping")
			continue
		}

		if name == s.device {
			return i, nil
		}
	}

	return 0, errFactory.WithData(ErrSensorNotFound, s.device)
}

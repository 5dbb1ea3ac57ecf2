package power

import (
	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/distatus/battery"
)

// batterySource reads the first battery reported by the OS.
type batterySource struct {
	getAll func() ([]*battery.Battery, error)
	logger logger.Logger
}

func newBatterySource(getAll func() ([]*battery.Battery, error), log logger.Logger) (*batterySource, error) {
	errFactory := errors.New()

	batteries, err := getAll()
	if err != nil && len(batteries) == 0 {
		return nil, errFactory.Wrap(ErrDeviceOpen, err)
	}

	if len(batteries) == 0 {
		log.Warn().Msg("No battery detected, power status will be unknown")
	} else {
		log.Debug().Int("batteries", len(batteries)).Msg("Battery source ready")
	}

	return &batterySource{getAll: getAll, logger: log}, nil
}

func (s *batterySource) Read() (Status, error) {
	errFactory := errors.New()

	batteries, err := s.getAll()
	if len(batteries) == 0 || batteries[0] == nil {
		if err == nil {
			return UnknownStatus, errFactory.New(ErrNoBattery)
		}
		return UnknownStatus, errFactory.Wrap(ErrQueryFailed, err)
	}

	bat := batteries[0]
	if bat.Full <= 0 {
		return UnknownStatus, errFactory.WithData(ErrQueryFailed, "battery reports zero full capacity")
	}

	s.logger.Debug().
		Interface("state", bat.State).
		Float64("current", bat.Current).
		Float64("full", bat.Full).
		Msg("Battery info")

	return Status{
		AC:      acStateFromBattery(bat.State),
		Percent: percentOf(bat.Current, bat.Full),
	}, nil
}

func acStateFromBattery(state battery.State) ACState {
	switch state {
	case battery.Discharging, battery.Empty:
		return OnBattery
	case battery.Charging, battery.Full:
		return OnAC
	default:
		return Unknown
	}
}

func percentOf(current, full float64) int {
	p := int(current / full * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}

	return p
}

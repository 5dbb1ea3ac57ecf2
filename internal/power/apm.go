package power

// Values from <machine/apmvar.h>.
const (
	apmACOff     = 0x00
	apmACOn      = 0x01
	apmACBackup  = 0x02
	apmACUnknown = 0xff

	apmBatteryLifeUnknown = 0xff
)

// apmPowerInfo mirrors struct apm_power_info.
type apmPowerInfo struct {
	BatteryState uint8
	ACState      uint8
	BatteryLife  uint8
	_            uint8
	MinutesLeft  uint32
	_            [6]uint32
}

func acStateFromAPM(raw uint8) ACState {
	switch raw {
	case apmACOff:
		return OnBattery
	case apmACOn:
		return OnAC
	default:
		return Unknown
	}
}

func (i *apmPowerInfo) status() Status {
	return Status{
		AC:      acStateFromAPM(i.ACState),
		Percent: int(i.BatteryLife),
	}
}

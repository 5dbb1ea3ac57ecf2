package power

// Reader queries the platform power source once per call.
type Reader interface {
	Read() (Status, error)
}

// ACState classifies whether the machine runs on mains power.
type ACState int

const (
	Unknown ACState = iota
	OnBattery
	OnAC
)

func (s ACState) String() string {
	switch s {
	case OnBattery:
		return "battery"
	case OnAC:
		return "ac"
	default:
		return "unknown"
	}
}

// Status is one power sample. Percent is 0-100 unless the source reports a
// sentinel for an unknown charge.
type Status struct {
	AC      ACState
	Percent int
}

// UnknownStatus is used when no sample has been read yet.
var UnknownStatus = Status{AC: Unknown, Percent: 0}

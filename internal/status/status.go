// Package status composes the root window status line.
package status

import (
	"fmt"
	"strconv"

	"codeberg.org/mutker/rootstatus/internal/power"
	"codeberg.org/mutker/rootstatus/internal/sensors"
)

const (
	// MaxLen is the longest status line in bytes, not counting a terminator.
	MaxLen = 79

	// CriticalPercent is the charge below which a discharging battery is
	// flagged.
	CriticalPercent = 15

	criticalIndicator = "!!!"
)

// Indicator returns the power marker: "+" on AC, "-" on battery, "U" when
// unknown, and "!!!" on battery below CriticalPercent.
func Indicator(p power.Status) string {
	switch p.AC {
	case power.OnBattery:
		if p.Percent < CriticalPercent {
			return criticalIndicator
		}
		return "-"
	case power.OnAC:
		return "+"
	default:
		return "U"
	}
}

// Compose renders "Bat <indicator><percent>% | <temp>°C | <timestamp>".
// It panics if the result is longer than MaxLen, which bounded inputs never
// produce.
func Compose(p power.Status, temp sensors.Celsius, timestamp string) string {
	line := "Bat " + Indicator(p) + strconv.Itoa(p.Percent) + "% | " +
		strconv.Itoa(int(temp)) + "°C | " + timestamp

	if len(line) > MaxLen {
		panic(fmt.Sprintf("status: line of %d bytes exceeds %d: %q", len(line), MaxLen, line))
	}

	return line
}

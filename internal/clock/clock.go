// Package clock renders the wall-clock part of the status line.
package clock

import "time"

// Layout is ISO date, space, 24-hour hour:minute. Always 16 characters for
// years 1000 through 9999.
const Layout = "2006-01-02 15:04"

// Now returns the current local time formatted with Layout.
func Now() string {
	return Format(time.Now())
}

// Format renders t in the local time zone.
func Format(t time.Time) string {
	return t.Local().Format(Layout)
}

//go:build !openbsd

package power

import (
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/distatus/battery"
)

// Open returns the portable battery source. Only OpenBSD exposes the APM
// device, so path is unused here.
func Open(path string, log logger.Logger) (Reader, error) {
	log.Debug().Str("device", path).Msg("APM device unavailable on this platform, using battery source")

	return newBatterySource(battery.GetAll, log)
}

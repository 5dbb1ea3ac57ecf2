package sensors

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"codeberg.org/mutker/rootstatus/internal/errors"
)

const hwmonRoot = "/sys/class/hwmon"

// hwmonBus enumerates /sys/class/hwmon/hwmon<N>. Each chip's "name" file is
// its device name and temp1_input holds millidegrees Celsius.
type hwmonBus struct {
	root string
}

func newHwmonBus(root string) *hwmonBus {
	return &hwmonBus{root: root}
}

func (b *hwmonBus) chip(index int) string {
	return filepath.Join(b.root, fmt.Sprintf("hwmon%d", index))
}

func (b *hwmonBus) DeviceName(index int) (string, error) {
	errFactory := errors.New()

	if _, err := os.Stat(b.chip(index)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errFactory.Wrap(ErrNoDevice, err)
		}
		return "", errFactory.Wrap(ErrBusy, err)
	}

	name, err := os.ReadFile(filepath.Join(b.chip(index), "name"))
	if err != nil {
		return "", errFactory.Wrap(ErrBusy, err)
	}

	return string(bytes.TrimSpace(name)), nil
}

func (b *hwmonBus) Temperature(index int) (int64, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(filepath.Join(b.chip(index), "temp1_input"))
	if err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	milli, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	return ToMicroKelvin(milli), nil
}

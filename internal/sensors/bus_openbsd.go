//go:build openbsd

package sensors

import (
	"unsafe"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"golang.org/x/sys/unix"
)

// From <sys/sysctl.h> and <sys/sensors.h>.
const (
	ctlHW             = 6
	hwSensors         = 11
	sensorTemp        = 0
	sensorFlagInvalid = 0x0001

	// Larger than SENSOR_MAX_TYPES so that kernels with more sensor types
	// still fit the buffer.
	sensorTypesCap = 64
)

type sensorDev struct {
	Num          int32
	Xname        [16]byte
	Maxnumt      [sensorTypesCap]int32
	SensorsCount int32
}

type sensor struct {
	Desc   [32]byte
	Tv     unix.Timeval
	Value  int64
	Type   int32
	Status int32
	Numt   int32
	Flags  int32
}

// sysctlBus walks hw.sensors.
type sysctlBus struct{}

// DefaultBus returns the hw.sensors sysctl bus.
func DefaultBus() Bus {
	return sysctlBus{}
}

func (sysctlBus) DeviceName(index int) (string, error) {
	errFactory := errors.New()

	var dev sensorDev
	mib := []int32{ctlHW, hwSensors, int32(index)}
	if err := sysctl(mib, unsafe.Pointer(&dev), unsafe.Sizeof(dev)); err != nil {
		// ENOENT ends the device list, anything else (ENXIO for a
		// detached device, EBUSY) only makes this index unusable.
		if err == unix.ENOENT {
			return "", errFactory.Wrap(ErrNoDevice, err)
		}
		return "", errFactory.Wrap(ErrBusy, err)
	}

	return unix.ByteSliceToString(dev.Xname[:]), nil
}

func (sysctlBus) Temperature(index int) (int64, error) {
	errFactory := errors.New()

	var s sensor
	mib := []int32{ctlHW, hwSensors, int32(index), sensorTemp, 0}
	if err := sysctl(mib, unsafe.Pointer(&s), unsafe.Sizeof(s)); err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	if s.Flags&sensorFlagInvalid != 0 {
		return 0, errFactory.WithData(ErrReadFailed, "sensor value flagged invalid")
	}

	return s.Value, nil
}

func sysctl(mib []int32, out unsafe.Pointer, size uintptr) error {
	n := size
	_, _, errno := unix.Syscall6(
		unix.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])),
		uintptr(len(mib)),
		uintptr(out),
		uintptr(unsafe.Pointer(&n)),
		0,
		0,
	)
	if errno != 0 {
		return errno
	}

	return nil
}

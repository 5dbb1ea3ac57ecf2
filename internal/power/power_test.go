package power

import (
	stderrors "errors"
	"io"
	"testing"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/distatus/battery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestACStateFromAPM(t *testing.T) {
	tests := []struct {
		raw  uint8
		want ACState
	}{
		{apmACOff, OnBattery},
		{apmACOn, OnAC},
		{apmACBackup, Unknown},
		{apmACUnknown, Unknown},
		{0x07, Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, acStateFromAPM(tt.raw), "raw AC state %#x", tt.raw)
	}
}

func TestAPMPowerInfoStatus(t *testing.T) {
	info := apmPowerInfo{ACState: apmACOff, BatteryLife: 9, MinutesLeft: 42}
	assert.Equal(t, Status{AC: OnBattery, Percent: 9}, info.status())

	info = apmPowerInfo{ACState: apmACUnknown, BatteryLife: apmBatteryLifeUnknown}
	assert.Equal(t, Status{AC: Unknown, Percent: 255}, info.status())
}

func TestACStateFromBattery(t *testing.T) {
	assert.Equal(t, OnBattery, acStateFromBattery(battery.Discharging))
	assert.Equal(t, OnBattery, acStateFromBattery(battery.Empty))
	assert.Equal(t, OnAC, acStateFromBattery(battery.Charging))
	assert.Equal(t, OnAC, acStateFromBattery(battery.Full))
	assert.Equal(t, Unknown, acStateFromBattery(battery.Unknown))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 82, percentOf(41000, 50000))
	assert.Equal(t, 100, percentOf(51000, 50000))
	assert.Equal(t, 0, percentOf(-1, 50000))
	assert.Equal(t, 9, percentOf(4999, 50000))
}

func TestBatterySourceRead(t *testing.T) {
	log := logger.New(io.Discard)
	getAll := func() ([]*battery.Battery, error) {
		return []*battery.Battery{{State: battery.Charging, Current: 41000, Full: 50000}}, nil
	}

	src, err := newBatterySource(getAll, log)
	require.NoError(t, err)

	st, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, Status{AC: OnAC, Percent: 82}, st)
}

func TestBatterySourceOpenFailure(t *testing.T) {
	getAll := func() ([]*battery.Battery, error) {
		return nil, stderrors.New("no power_supply class")
	}

	_, err := newBatterySource(getAll, logger.New(io.Discard))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrDeviceOpen))
}

func TestBatterySourceReadFailure(t *testing.T) {
	calls := 0
	getAll := func() ([]*battery.Battery, error) {
		calls++
		if calls == 1 {
			return nil, nil
		}
		return nil, stderrors.New("read failed")
	}

	src, err := newBatterySource(getAll, logger.New(io.Discard))
	require.NoError(t, err, "no battery at startup is not fatal")

	st, err := src.Read()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrQueryFailed))
	assert.Equal(t, UnknownStatus, st)
}

func TestBatterySourceNoBattery(t *testing.T) {
	getAll := func() ([]*battery.Battery, error) {
		return nil, nil
	}

	src, err := newBatterySource(getAll, logger.New(io.Discard))
	require.NoError(t, err)

	_, err = src.Read()
	assert.True(t, errors.HasCode(err, ErrNoBattery))
}

func TestACStateString(t *testing.T) {
	assert.Equal(t, "battery", OnBattery.String())
	assert.Equal(t, "ac", OnAC.String())
	assert.Equal(t, "unknown", Unknown.String())
}

// Package daemon runs the read, compose, publish cycle on a fixed interval.
package daemon

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"codeberg.org/mutker/rootstatus/internal/clock"
	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"codeberg.org/mutker/rootstatus/internal/metrics"
	"codeberg.org/mutker/rootstatus/internal/power"
	"codeberg.org/mutker/rootstatus/internal/sensors"
	"codeberg.org/mutker/rootstatus/internal/status"
)

// Interval is the pause between two cycles.
const Interval = 10 * time.Second

// Publisher makes a status line visible, e.g. as the root window name.
type Publisher interface {
	Publish(text string) error
}

// Daemon holds the long-lived handles. It is driven by a single goroutine;
// only the hangup flag and counter are read from elsewhere.
type Daemon struct {
	power     power.Reader
	sensors   sensors.Reader
	publisher Publisher
	metrics   metrics.Collector
	logger    logger.Logger
	now       func() time.Time
	interval  time.Duration

	lastPower power.Status
	cycles    uint64

	wake    <-chan os.Signal
	hangup  atomic.Bool
	hangups atomic.Uint64
}

type Option func(*Daemon)

// WithInterval overrides Interval.
func WithInterval(d time.Duration) Option {
	return func(dm *Daemon) {
		dm.interval = d
	}
}

// WithClock overrides the wall clock used for the timestamp.
func WithClock(now func() time.Time) Option {
	return func(dm *Daemon) {
		dm.now = now
	}
}

// WithHangup interrupts the sleep whenever ch delivers, see NotifyHangup.
func WithHangup(ch <-chan os.Signal) Option {
	return func(dm *Daemon) {
		dm.wake = ch
	}
}

// WithMetrics records every cycle's sample in c.
func WithMetrics(c metrics.Collector) Option {
	return func(dm *Daemon) {
		dm.metrics = c
	}
}

func New(p power.Reader, s sensors.Reader, pub Publisher, log logger.Logger, opts ...Option) *Daemon {
	d := &Daemon{
		power:     p,
		sensors:   s,
		publisher: pub,
		logger:    log,
		now:       time.Now,
		interval:  Interval,
		lastPower: power.UnknownStatus,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NotifyHangup starts catching SIGHUP and returns the channel to pass to
// WithHangup. A hangup only cuts the current sleep short; every other signal
// keeps its default disposition.
func NotifyHangup() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP)

	return ch
}

// Hangups returns how many hangups have interrupted a sleep.
func (d *Daemon) Hangups() uint64 {
	return d.hangups.Load()
}

// Run cycles until ctx is done or publishing fails. The returned error is
// always fatal for the process.
func (d *Daemon) Run(ctx context.Context) error {
	errFactory := errors.New()

	d.logger.Info().Dur("interval", d.interval).Msg("Status updates started")

	for {
		if d.hangup.Swap(false) {
			d.logger.Debug().Msg("Hangup received, refreshing status")
		}

		if _, err := d.Cycle(ctx); err != nil {
			return errFactory.Wrap(errors.ErrMainLoop, err)
		}

		if !d.sleep(ctx) {
			d.logger.Info().Msg("Status updates stopped")
			return nil
		}
	}
}

// Cycle reads power, temperature and time, composes the line and publishes
// it. Only a publish failure is returned; sensor failures degrade the line.
func (d *Daemon) Cycle(ctx context.Context) (string, error) {
	d.cycles++

	p, err := d.power.Read()
	if err != nil {
		d.logger.Warn().Err(err).
			Str("fallback_ac", d.lastPower.AC.String()).
			Int("fallback_percent", d.lastPower.Percent).
			Msg("Power query failed, reusing last status")
		p = d.lastPower
	} else {
		d.lastPower = p
	}

	if d.cycles == 1 {
		d.logger.Info().
			Str("ac", p.AC.String()).
			Int("battery_percent", p.Percent).
			Msg("Initial power status")
	}

	temp, err := d.sensors.Read()
	found := err == nil
	if !found {
		if errors.HasCode(err, sensors.ErrSensorNotFound) {
			d.logger.Debug().Err(err).Msg("CPU temperature sensor not found")
		} else {
			d.logger.Warn().Err(err).Msg("Temperature read failed")
		}
		temp = 0
	}

	now := d.now()
	line := status.Compose(p, temp, clock.Format(now))

	if err := d.publisher.Publish(line); err != nil {
		return "", err
	}

	d.record(ctx, now, p, temp, found, line)

	return line, nil
}

func (d *Daemon) record(ctx context.Context, ts time.Time, p power.Status, temp sensors.Celsius, found bool, line string) {
	if d.metrics == nil {
		return
	}

	sample := &metrics.Sample{
		Timestamp:   ts,
		Power:       metrics.PowerMetrics{ACState: p.AC.String(), Percent: p.Percent},
		Temperature: metrics.TempMetrics{Celsius: int(temp), Found: found},
		StatusLine:  line,
	}

	if err := d.metrics.Record(ctx, sample); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			d.logger.ErrorWithCode(appErr).Msg("Failed to record sample")
			return
		}
		d.logger.Error().Err(err).Msg("Failed to record sample")
	}
}

// sleep waits for the interval, a hangup, or ctx. It reports false only
// when ctx is done.
func (d *Daemon) sleep(ctx context.Context) bool {
	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-d.wake:
		d.hangup.Store(true)
		d.hangups.Add(1)
		return true
	case <-ctx.Done():
		return false
	}
}

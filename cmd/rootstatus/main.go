package main

import (
	"context"
	"os"

	"codeberg.org/mutker/rootstatus/internal/config"
	"codeberg.org/mutker/rootstatus/internal/daemon"
	"codeberg.org/mutker/rootstatus/internal/display"
	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"codeberg.org/mutker/rootstatus/internal/metrics"
	"codeberg.org/mutker/rootstatus/internal/pid"
	"codeberg.org/mutker/rootstatus/internal/power"
	"codeberg.org/mutker/rootstatus/internal/sensors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.WarnLevel, logger.IsService())
		fatal(err, "failed to load config")
	}

	level, err := logger.ParseLevel(cfg.GetLogLevel().String())
	if err != nil {
		fatal(err, "invalid log level")
	}
	logger.Init(level, logger.IsService())
	log := logger.Default()
	log.Debug().Interface("config", cfg).Msg("Config loaded")

	lock := pid.New(os.Getenv("XDG_RUNTIME_DIR"), os.Getenv("DISPLAY"))
	if err := lock.Acquire(); err != nil {
		if errors.HasCode(err, errors.ErrAlreadyRunning) {
			fatal(err, "another updater owns this display")
		}
		log.Warn().Err(err).Str("path", lock.Path()).Msg("Single-instance lock unavailable, continuing without it")
	}

	// Handles below live until the process exits; there is no shutdown path.
	dpy, err := display.Connect(log.With("display"))
	if err != nil {
		fatal(err, "can't connect to an X server")
	}
	hangup := daemon.NotifyHangup()

	psrc, err := power.Open(cfg.GetAPMDevice(), log.With("power"))
	if err != nil {
		fatal(err, "failed to open power device")
	}

	temp := sensors.NewReader(sensors.DefaultBus(), cfg.GetSensorDevice(), log.With("sensors"))

	mcfg := metrics.DefaultConfig()
	mcfg.Enabled = cfg.IsMetricsEnabled()
	mcfg.DBPath = cfg.GetMetricsDBPath()
	collector, err := metrics.NewService(mcfg, log.With("metrics"))
	if err != nil {
		fatal(err, "failed to initialize metrics")
	}

	d := daemon.New(psrc, temp, dpy, log.With("daemon"),
		daemon.WithHangup(hangup),
		daemon.WithMetrics(collector),
	)

	if err := d.Run(context.Background()); err != nil {
		fatal(err, "couldn't set X server's root window name")
	}
}

func fatal(err error, msg string) {
	log := logger.Default()

	var appErr errors.Error
	if errors.As(err, &appErr) {
		log.FatalWithCode(appErr).Msg(msg)
	}
	log.Fatal().Err(err).Msg(msg)
}

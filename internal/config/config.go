package config

import (
	"strings"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "ROOTSTATUS"
	DefaultLogLevel  = LogLevelWarning
	DefaultAPMDevice = "/dev/apm"
)

// Config is read from the environment only; the program takes no flags
// and no configuration file.
type Config struct {
	LogLevel     LogLevel `mapstructure:"log_level"`
	APMDevice    string   `mapstructure:"apm_device"`
	SensorDevice string   `mapstructure:"sensor_device"`
	MetricsDB    string   `mapstructure:"metrics_db"`
}

func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("apm_device", DefaultAPMDevice)
	v.SetDefault("sensor_device", DefaultSensorDevice)
	v.SetDefault("metrics_db", "")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	cfg.LogLevel = LogLevel(strings.ToLower(string(cfg.LogLevel)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !c.LogLevel.IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel.String())
	}

	if c.APMDevice == "" {
		return errFactory.WithData(errors.ErrInvalidConfig, "apm_device must not be empty")
	}

	if c.SensorDevice == "" {
		return errFactory.WithData(errors.ErrInvalidConfig, "sensor_device must not be empty")
	}

	return nil
}

func (c *Config) GetLogLevel() LogLevel {
	return c.LogLevel
}

func (c *Config) GetAPMDevice() string {
	return c.APMDevice
}

func (c *Config) GetSensorDevice() string {
	return c.SensorDevice
}

func (c *Config) IsMetricsEnabled() bool {
	return c.MetricsDB != ""
}

func (c *Config) GetMetricsDBPath() string {
	return c.MetricsDB
}

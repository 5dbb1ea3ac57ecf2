package config

// Provider defines the interface for accessing configuration values.
// All configuration values are immutable after initial loading.
type Provider interface {
	// GetLogLevel returns the configured logging level
	GetLogLevel() LogLevel

	// GetAPMDevice returns the path of the power-management device
	GetAPMDevice() string

	// GetSensorDevice returns the name of the sensor device holding the CPU temperature
	GetSensorDevice() string

	// IsMetricsEnabled returns whether sample history is recorded
	IsMetricsEnabled() bool

	// GetMetricsDBPath returns the path to the sample history database
	GetMetricsDBPath() string
}

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	envPrefix string
}

// WithEnvPrefix specifies a custom environment variable prefix.
// Default is "ROOTSTATUS".
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}

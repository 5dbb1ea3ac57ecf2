package metrics

import "codeberg.org/mutker/rootstatus/internal/errors"

const (
	// File system permissions and paths
	defaultDirPerm   = 0o755
	backupDirName    = "backups"
	sqliteDSNOptions = "?_journal=WAL&_auto_vacuum=2"
)

type Config struct {
	DBPath          string
	BackupOnMigrate bool
	Enabled         bool
}

func DefaultConfig() Config {
	return Config{
		BackupOnMigrate: true,
		Enabled:         false, // Disabled by default
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	// Only validate DBPath if metrics is enabled
	if c.Enabled && c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

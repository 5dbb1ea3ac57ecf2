package metrics

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db     *sql.DB
	logger logger.Logger
	mu     sync.Mutex
}

// NewRepository opens (creating if needed) the SQLite database at
// cfg.DBPath and brings its schema to SchemaVersion.
func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+sqliteDSNOptions)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := ValidateAndUpdateSchema(db, cfg, log); err != nil {
		db.Close()
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "schema_version",
			Error: err.Error(),
		})
	}

	log.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Metrics repository initialized")

	return &sqliteRepository{db: db, logger: log}, nil
}

func (r *sqliteRepository) Store(ctx context.Context, sample *Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, insertSampleSQL,
		sample.Timestamp.Unix(),
		sample.Power.ACState,
		sample.Power.Percent,
		sample.Temperature.Celsius,
		boolToInt(sample.Temperature.Found),
		sample.StatusLine,
	)
	if err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	r.logger.Debug().Int64("timestamp", sample.Timestamp.Unix()).Msg("Sample stored")

	return nil
}

package metrics

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSample(ts time.Time, line string) *Sample {
	return &Sample{
		Timestamp:   ts,
		Power:       PowerMetrics{ACState: "battery", Percent: 9},
		Temperature: TempMetrics{Celsius: 31, Found: true},
		StatusLine:  line,
	}
}

func enabledConfig(t *testing.T) Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.DBPath = filepath.Join(t.TempDir(), "db", "samples.db")

	return cfg
}

// newTestService opens an enabled collector and closes its database when
// the test ends.
func newTestService(t *testing.T, cfg Config) Collector {
	t.Helper()

	c, err := NewService(cfg, logger.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		c.(*service).repo.(*sqliteRepository).db.Close()
	})

	return c
}

func TestNewServiceDisabled(t *testing.T) {
	c, err := NewService(DefaultConfig(), logger.New(io.Discard))
	require.NoError(t, err)
	assert.IsType(t, &noopCollector{}, c)

	assert.NoError(t, c.Record(context.Background(), testSample(time.Now(), "x")))
}

func TestNewServiceInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	_, err := NewService(cfg, logger.New(io.Discard))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrInvalidDBPath))
}

func TestRecordStoresSamples(t *testing.T) {
	cfg := enabledConfig(t)
	c := newTestService(t, cfg)

	ts := time.Unix(1709302020, 0)
	ctx := context.Background()
	require.NoError(t, c.Record(ctx, testSample(ts, "Bat !!!9% | 31°C | 2024-03-01 14:07")))
	require.NoError(t, c.Record(ctx, testSample(ts.Add(10*time.Second), "second")))
	// Same second as the previous sample replaces it.
	require.NoError(t, c.Record(ctx, testSample(ts.Add(10*time.Second), "replaced")))

	db, err := sql.Open("sqlite3", cfg.DBPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM samples").Scan(&count))
	assert.Equal(t, 2, count)

	var line, ac string
	var found int
	require.NoError(t, db.QueryRow(
		"SELECT status_line, ac_state, sensor_found FROM samples WHERE timestamp = ?", ts.Unix()+10,
	).Scan(&line, &ac, &found))
	assert.Equal(t, "replaced", line)
	assert.Equal(t, "battery", ac)
	assert.Equal(t, 1, found)
}

func TestRecordNilSample(t *testing.T) {
	c := newTestService(t, enabledConfig(t))

	err := c.Record(context.Background(), nil)
	assert.True(t, errors.HasCode(err, ErrInvalidMetrics))
}

func TestRecordCanceledContext(t *testing.T) {
	c := newTestService(t, enabledConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Record(ctx, testSample(time.Now(), "x"))
	assert.True(t, errors.HasCode(err, ErrOperationTimeout))
}

func TestSchemaMigrationBacksUpOldVersion(t *testing.T) {
	cfg := enabledConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm))

	db, err := sql.Open("sqlite3", cfg.DBPath)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE schema_versions (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL);
		INSERT INTO schema_versions (version, applied_at) VALUES (99, datetime('now'));`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo, err := NewRepository(cfg, logger.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, repo.(*sqliteRepository).db.Close())

	backups, err := filepath.Glob(filepath.Join(filepath.Dir(cfg.DBPath), backupDirName, "samples_v99_*.db"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	db, err = sql.Open("sqlite3", cfg.DBPath)
	require.NoError(t, err)
	defer db.Close()

	version, err := GetSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
}

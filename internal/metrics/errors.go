package metrics

import "codeberg.org/mutker/rootstatus/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("metrics_invalid_db_path")

	// Schema Errors
	ErrSchemaInitFailed       = errors.ErrorCode("metrics_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("metrics_schema_validation_failed")
	ErrSchemaMigrationFailed  = errors.ErrorCode("metrics_schema_migration_failed")

	// Storage Errors
	ErrStorageAccess = errors.ErrorCode("metrics_storage_access_failed")
	ErrStorageInit   = errors.ErrInitMetrics

	// Collection Errors
	ErrMetricsCollection = errors.ErrCollectMetrics
	ErrInvalidMetrics    = errors.ErrorCode("metrics_invalid_metrics")

	// Operation Errors
	ErrOperationTimeout = errors.ErrTimeout
)

func init() {
	errors.Register(ErrInvalidDBPath, "Metrics database path is empty")
	errors.Register(ErrSchemaInitFailed, "Failed to initialize metrics schema")
	errors.Register(ErrSchemaValidationFailed, "Failed to validate metrics schema")
	errors.Register(ErrSchemaMigrationFailed, "Failed to migrate metrics schema")
	errors.Register(ErrStorageAccess, "Failed to access metrics storage")
	errors.Register(ErrInvalidMetrics, "Invalid metrics sample")
}

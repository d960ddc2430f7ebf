package dmart

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load/report completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitConnectionError = 11 // Failed to open the store
	ExitCoercionError   = 12 // Non-numeric value in a numeric CSV field
	ExitConstraintError = 13 // Foreign-key or uniqueness violation
	ExitExecutionFailed = 14 // Report query execution failed
)

const (
	// DefaultStoreFile is the store filename used when neither configuration
	// nor flags name one. The store is a single SQLite file, created on first
	// open.
	DefaultStoreFile = "ecom.db"

	// DefaultQueryFile is the report query filename used when neither
	// configuration nor flags name one.
	DefaultQueryFile = "report.sql"

	// ReportTableName is the reserved name of the materialized report table.
	// Its prior contents are fully discarded on every report run.
	ReportTableName = "report_output"
)

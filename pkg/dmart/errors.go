package dmart

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := ingestor.Run(files)
//	if errors.Is(err, dmart.ErrConstraint) {
//	    // A foreign-key reference pointed at a nonexistent row
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStoreMissing indicates the store file does not exist. The report
	// command treats this as a recoverable early exit rather than creating
	// an empty store to query.
	ErrStoreMissing = errors.New("store not found")

	// ErrQueryFileMissing indicates the report query file was not found.
	ErrQueryFileMissing = errors.New("query file not found")

	// ErrCoercion indicates a non-empty, non-numeric value in a numeric CSV
	// field. The whole batch for that entity is abandoned.
	ErrCoercion = errors.New("type coercion failed")

	// ErrConstraint indicates the store rejected a row, typically a
	// foreign-key reference to a nonexistent row. Insert-if-absent absorbs
	// the common uniqueness case, so this usually means out-of-order
	// ingestion or a genuinely dangling reference.
	ErrConstraint = errors.New("constraint violation")

	// ErrExecutionFailed indicates the report query could not be
	// materialized. The destination table is left absent.
	ErrExecutionFailed = errors.New("execution failed")

	// ErrConnectionFailed indicates the store could not be opened.
	ErrConnectionFailed = errors.New("connection failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrCoercion):
		return ExitCoercionError
	case errors.Is(err, ErrConstraint):
		return ExitConstraintError
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	case errors.Is(err, ErrStoreMissing), errors.Is(err, ErrQueryFileMissing):
		return ExitGeneralError
	}

	errStr := err.Error()

	// Cobra surfaces argument and flag misuse as plain error strings
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "arg(s)") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	// Check for common storage error patterns
	if strings.Contains(errStr, "unable to open database") {
		return ExitConnectionError
	}
	if strings.Contains(errStr, "constraint failed") {
		return ExitConstraintError
	}

	return ExitGeneralError
}

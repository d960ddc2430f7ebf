package dmart

// Logger defines the logging interface used across dmart components.
// Human-facing diagnostics go through a Logger (stderr by convention);
// the primary program output (row counts) goes to stdout directly.
//
// Implementations must be safe for concurrent use.
type Logger interface {
	// Verbose logs detailed diagnostic information. No-op unless verbose
	// mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warn logs non-fatal conditions, such as a missing source CSV.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

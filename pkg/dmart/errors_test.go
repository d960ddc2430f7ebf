package dmart_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/dmart/pkg/dmart"
)

func TestExitCodeForError_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, dmart.ExitSuccess},
		{"invalid config", dmart.ErrInvalidConfig, dmart.ExitConfigError},
		{"connection failed", dmart.ErrConnectionFailed, dmart.ExitConnectionError},
		{"coercion", dmart.ErrCoercion, dmart.ExitCoercionError},
		{"constraint", dmart.ErrConstraint, dmart.ExitConstraintError},
		{"execution failed", dmart.ErrExecutionFailed, dmart.ExitExecutionFailed},
		{"store missing", dmart.ErrStoreMissing, dmart.ExitGeneralError},
		{"query file missing", dmart.ErrQueryFileMissing, dmart.ExitGeneralError},
		{"general error", errors.New("something went wrong"), dmart.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dmart.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_WrappedSentinels(t *testing.T) {
	err := fmt.Errorf("products: row 3: column \"price\": %w", dmart.ErrCoercion)
	if got := dmart.ExitCodeForError(err); got != dmart.ExitCoercionError {
		t.Errorf("ExitCodeForError(wrapped coercion) = %d, want %d", got, dmart.ExitCoercionError)
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag --foo"), dmart.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), dmart.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), dmart.ExitUsageError},
		{"required flag", errors.New("required flag \"store\" not set"), dmart.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--verbose\""), dmart.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dmart.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_StoragePatterns(t *testing.T) {
	if got := dmart.ExitCodeForError(errors.New("unable to open database file")); got != dmart.ExitConnectionError {
		t.Errorf("Expected %d for open failure, got %d", dmart.ExitConnectionError, got)
	}
	if got := dmart.ExitCodeForError(errors.New("FOREIGN KEY constraint failed")); got != dmart.ExitConstraintError {
		t.Errorf("Expected %d for constraint failure, got %d", dmart.ExitConstraintError, got)
	}
}

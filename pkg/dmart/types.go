package dmart

import (
	"errors"
	"fmt"
)

// LoadConfig contains all parameters needed for a load operation.
type LoadConfig struct {
	// ProjectPath is the directory containing the source CSV files
	ProjectPath string

	// StorePath is the path of the SQLite store file, created if absent
	StorePath string

	// DataFiles maps each entity name (categories, products, customers,
	// orders, reviews) to its source CSV path. A missing file is a warning,
	// not an error; the entity is skipped with an inserted count of zero.
	DataFiles map[string]string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.StorePath == "" {
		errs = append(errs, fmt.Errorf("StorePath is required: %w", ErrInvalidConfig))
	}

	if len(c.DataFiles) == 0 {
		errs = append(errs, fmt.Errorf("DataFiles is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ReportConfig contains all parameters needed for a report materialization.
type ReportConfig struct {
	// StorePath is the path of the SQLite store file. Unlike the loader,
	// the report command does not create the store: a missing file is a
	// graceful early exit.
	StorePath string

	// QueryPath is the path of the file holding the report SELECT statement
	QueryPath string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ReportConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ReportConfig) Validate() error {
	var errs []error

	if c.StorePath == "" {
		errs = append(errs, fmt.Errorf("StorePath is required: %w", ErrInvalidConfig))
	}

	if c.QueryPath == "" {
		errs = append(errs, fmt.Errorf("QueryPath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

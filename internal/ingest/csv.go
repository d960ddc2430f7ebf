package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vvka-141/dmart/pkg/dmart"
)

// record is one data row of a CSV file paired with its header-derived field
// mapping. Header names are matched case-insensitively ("ID" and "id" are
// the same column); missing optional columns read as the empty string.
type record struct {
	fields map[string]int
	values []string
}

// get returns the raw text of the named column, or "" when the column is
// absent from the header.
func (r record) get(col string) string {
	idx, ok := r.fields[col]
	if !ok || idx >= len(r.values) {
		return ""
	}
	return r.values[idx]
}

// id returns the row's required integer identity.
func (r record) id() (int64, error) {
	v := strings.TrimSpace(r.get("id"))
	if v == "" {
		return 0, fmt.Errorf("column \"id\": value is required: %w", dmart.ErrCoercion)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column \"id\": %q is not an integer: %w", v, dmart.ErrCoercion)
	}
	return n, nil
}

// intField coerces an optional integer column. Empty means NULL.
func (r record) intField(col string) (*int64, error) {
	v := strings.TrimSpace(r.get(col))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("column %q: %q is not an integer: %w", col, v, dmart.ErrCoercion)
	}
	return &n, nil
}

// floatField coerces an optional decimal column. Empty means NULL.
func (r record) floatField(col string) (*float64, error) {
	v := strings.TrimSpace(r.get(col))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("column %q: %q is not a number: %w", col, v, dmart.ErrCoercion)
	}
	return &f, nil
}

// textField passes an optional text column through unchanged. Empty means
// NULL.
func (r record) textField(col string) *string {
	v := r.get(col)
	if v == "" {
		return nil
	}
	return &v
}

// parseRecords parses CSV content into records keyed by its header row.
// Content with no header (zero bytes) yields zero records. name is used in
// error messages only.
func parseRecords(name string, content []byte) ([]record, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", name, err)
	}

	fields := make(map[string]int, len(header))
	for i, name := range header {
		fields[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var out []record
	for {
		values, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		out = append(out, record{fields: fields, values: values})
	}
	return out, nil
}

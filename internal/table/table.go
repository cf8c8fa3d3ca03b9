// Package table provides the typed, ordered-column table that all export
// stages operate on: analysis extraction, metadata validation, merging and
// CSV serialization.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go-mvmapper/pkg/utils"
)

// Table holds named columns in a fixed order and one row of scalar values
// per entity. Values are coerced scalars: int, float64 or string.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]interface{}
}

// New creates an empty table with the given column order.
func New(cols ...string) *Table {
	t := &Table{
		cols:  append([]string(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range t.cols {
		t.index[c] = i
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a row; the number of values must match the number of columns.
func (t *Table) AppendRow(values ...interface{}) error {
	if len(values) != len(t.cols) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.cols))
	}
	t.rows = append(t.rows, append([]interface{}(nil), values...))
	return nil
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []interface{} {
	return append([]interface{}(nil), t.rows[i]...)
}

// Value returns the value at row i in the named column.
func (t *Table) Value(i int, col string) (interface{}, bool) {
	j, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i][j], true
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]interface{}, bool) {
	j, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]interface{}, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out, true
}

// ColumnStrings returns the named column rendered as strings.
func (t *Table) ColumnStrings(name string) ([]string, bool) {
	vals, ok := t.Column(name)
	if !ok {
		return nil, false
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatValue(v)
	}
	return out, true
}

// InnerJoin merges t with right on the given key column: the result keeps
// only rows whose key value appears in both tables, in t's row order, with
// t's columns first and right's columns after (key deduplicated). A right
// key occurring more than once matches its first row; key uniqueness is
// assumed, not enforced.
func (t *Table) InnerJoin(right *Table, key string) (*Table, error) {
	li, ok := t.index[key]
	if !ok {
		return nil, fmt.Errorf("left table has no column %q", key)
	}
	ri, ok := right.index[key]
	if !ok {
		return nil, fmt.Errorf("right table has no column %q", key)
	}

	cols := append([]string(nil), t.cols...)
	for _, c := range right.cols {
		if c != key {
			cols = append(cols, c)
		}
	}
	out := New(cols...)

	rightByKey := make(map[string]int, len(right.rows))
	for i, row := range right.rows {
		k := formatValue(row[ri])
		if _, seen := rightByKey[k]; !seen {
			rightByKey[k] = i
		}
	}

	for _, row := range t.rows {
		ridx, ok := rightByKey[formatValue(row[li])]
		if !ok {
			continue
		}
		merged := append([]interface{}(nil), row...)
		for j, v := range right.rows[ridx] {
			if j != ri {
				merged = append(merged, v)
			}
		}
		if err := out.AppendRow(merged...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Equal reports whether two tables have identical columns and rows, comparing
// values by their rendered form.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.cols) != len(other.cols) || len(t.rows) != len(other.rows) {
		return false
	}
	for i, c := range t.cols {
		if other.cols[i] != c {
			return false
		}
	}
	for i, row := range t.rows {
		for j, v := range row {
			if formatValue(v) != formatValue(other.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// WriteCSV serializes the table as comma-separated text with a header row
// and no row-index column. Quoting follows encoding/csv rules.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(t.cols))
	for _, row := range t.rows {
		for j, v := range row {
			record[j] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses comma-separated text with a header row into a table.
// Header names are trimmed and stripped of quotes; values are coerced to
// int or float64 where they parse as such.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		headers[i] = strings.ReplaceAll(h, `"`, "")
	}

	t := New(headers...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = utils.ParseValue(v)
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func formatValue(v interface{}) string {
	return fmt.Sprintf("%v", v)
}

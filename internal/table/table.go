// Package table provides the in-memory table model shared by all
// transformation engines: ordered named columns, ordered rows, and the
// projection and join operations applied to them.
package table

import (
	"errors"
	"fmt"
)

// ErrSchema indicates a required column is absent from a table.
var ErrSchema = errors.New("missing column")

// Row maps column names to cell values. Cells are strings; numeric
// interpretation happens where a value is aggregated, not here.
type Row map[string]string

// Table is an ordered set of named columns and an ordered list of rows.
// Engines never mutate a table they were given; they build new ones.
type Table struct {
	columns []string
	rows    []Row
}

// New builds a table, validating every row against the declared column set.
// Catching a stray key here keeps the aggregation code free of per-cell
// schema checks.
func New(columns []string, rows []Row) (*Table, error) {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		if set[c] {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		set[c] = true
	}
	for i, row := range rows {
		for k := range row {
			if !set[k] {
				return nil, fmt.Errorf("row %d: unknown column %q", i+1, k)
			}
		}
	}
	return &Table{columns: columns, rows: rows}, nil
}

// Columns returns the column names in order. The caller must not modify the
// returned slice.
func (t *Table) Columns() []string { return t.columns }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i. The caller must not modify the returned map.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Cell returns the value at row i in the named column. Absent cells read as
// the empty string.
func (t *Table) Cell(i int, name string) string { return t.rows[i][name] }

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

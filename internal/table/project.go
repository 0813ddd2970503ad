package table

import "fmt"

// Project returns a new table holding exactly the selected columns, in
// selection order. Rows keep their count and order; cells outside the
// selection are not carried over. Projecting twice with the same selection
// yields the same table as projecting once.
func Project(t *Table, selected []string) (*Table, error) {
	for _, name := range selected {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrSchema, name)
		}
	}

	rows := make([]Row, t.Len())
	for i := range rows {
		row := make(Row, len(selected))
		for _, name := range selected {
			if v, ok := t.rows[i][name]; ok {
				row[name] = v
			}
		}
		rows[i] = row
	}
	return &Table{columns: append([]string(nil), selected...), rows: rows}, nil
}

// Drop returns a new table without the named columns. Names absent from the
// table are ignored.
func Drop(t *Table, names []string) *Table {
	dropped := make(map[string]bool, len(names))
	for _, name := range names {
		dropped[name] = true
	}

	var columns []string
	for _, c := range t.columns {
		if !dropped[c] {
			columns = append(columns, c)
		}
	}

	rows := make([]Row, t.Len())
	for i := range rows {
		row := make(Row, len(columns))
		for _, c := range columns {
			if v, ok := t.rows[i][c]; ok {
				row[c] = v
			}
		}
		rows[i] = row
	}
	return &Table{columns: columns, rows: rows}
}

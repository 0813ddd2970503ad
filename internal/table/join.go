package table

import "fmt"

// Join computes the strict inner equi-join of left and right on the named
// key column. Key comparison is byte-exact; rows without a match on the
// other side are dropped. Output columns are left's columns followed by
// right's columns minus the key, and rows come out in left order.
//
// A key value repeated on either side yields the full cross product.
// Callers that need one output row per key must guarantee key uniqueness
// upstream; the join does not enforce it.
func Join(left, right *Table, key string) (*Table, error) {
	if !left.HasColumn(key) {
		return nil, fmt.Errorf("%w: %q in left table", ErrSchema, key)
	}
	if !right.HasColumn(key) {
		return nil, fmt.Errorf("%w: %q in right table", ErrSchema, key)
	}

	columns := append([]string(nil), left.columns...)
	var rightCols []string
	for _, c := range right.columns {
		if c != key {
			rightCols = append(rightCols, c)
			columns = append(columns, c)
		}
	}

	matches := make(map[string][]Row)
	for _, r := range right.rows {
		matches[r[key]] = append(matches[r[key]], r)
	}

	var rows []Row
	for _, lr := range left.rows {
		for _, rr := range matches[lr[key]] {
			row := make(Row, len(columns))
			for _, c := range left.columns {
				if v, ok := lr[c]; ok {
					row[c] = v
				}
			}
			for _, c := range rightCols {
				if v, ok := rr[c]; ok {
					row[c] = v
				}
			}
			rows = append(rows, row)
		}
	}
	return &Table{columns: columns, rows: rows}, nil
}

package engine

import (
	"fmt"

	"github.com/scientometry/dataproc/internal/querykey"
	"github.com/scientometry/dataproc/internal/table"
)

// groupColumn is the leading column of every extracted metric table.
const groupColumn = "Group"

// MetricTable is one extracted metric pivot.
type MetricTable struct {
	Metric string
	Table  *table.Table
}

// ExtractResults pivots a flat citation-analysis results table into one
// group-by-dataset table per metric. Each row's query cell decomposes into
// (group, dataset); rows whose group is not in groups are dropped silently.
// Output rows follow the configured group order, dataset columns appear in
// first-seen order among retained rows, a pair never measured stays an
// empty cell (not zero), and a pair measured twice keeps the last value.
// When metrics is empty, every non-query column is extracted.
func ExtractResults(results *table.Table, queryColumn string, groups, metrics, selected []string) ([]MetricTable, error) {
	if !results.HasColumn(queryColumn) {
		return nil, fmt.Errorf("%w: %q in results source", table.ErrSchema, queryColumn)
	}
	if len(metrics) == 0 {
		for _, c := range results.Columns() {
			if c != queryColumn {
				metrics = append(metrics, c)
			}
		}
	} else {
		for _, m := range metrics {
			if !results.HasColumn(m) {
				return nil, fmt.Errorf("%w: %q in results source", table.ErrSchema, m)
			}
		}
	}

	wanted := make(map[string]bool, len(groups))
	for _, g := range groups {
		wanted[g] = true
	}

	// cells[metric][group][dataset]; datasets records column order.
	var datasets []string
	seen := make(map[string]bool)
	cells := make(map[string]map[string]map[string]string, len(metrics))
	for _, m := range metrics {
		cells[m] = make(map[string]map[string]string)
	}

	for r := 0; r < results.Len(); r++ {
		key, err := querykey.Decompose(results.Cell(r, queryColumn))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+1, err)
		}
		if !wanted[key.Group] {
			continue
		}
		if !seen[key.Dataset] {
			seen[key.Dataset] = true
			datasets = append(datasets, key.Dataset)
		}
		for _, m := range metrics {
			byGroup := cells[m]
			if byGroup[key.Group] == nil {
				byGroup[key.Group] = make(map[string]string)
			}
			byGroup[key.Group][key.Dataset] = results.Cell(r, m)
		}
	}

	columns := append([]string{groupColumn}, datasets...)
	out := make([]MetricTable, 0, len(metrics))
	for _, m := range metrics {
		rows := make([]table.Row, 0, len(groups))
		for _, g := range groups {
			row := table.Row{groupColumn: g}
			for _, d := range datasets {
				if v, ok := cells[m][g][d]; ok {
					row[d] = v
				}
			}
			rows = append(rows, row)
		}

		t, err := table.New(append([]string(nil), columns...), rows)
		if err != nil {
			return nil, err
		}
		if len(selected) > 0 {
			if t, err = table.Project(t, selected); err != nil {
				return nil, err
			}
		}
		out = append(out, MetricTable{Metric: m, Table: t})
	}
	return out, nil
}

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scientometry/dataproc/internal/table"
	"github.com/scientometry/dataproc/internal/yearrange"
)

// yearColumn is the year field expected in every per-year source table and
// emitted as the leading output column.
const yearColumn = "Year"

// CountPublications builds a per-year publication count table: one row per
// year in span, ascending, with a leading Year column and one column per
// source label. Years with no matching rows count zero; source rows outside
// the span are dropped.
func CountPublications(sources []Source, span yearrange.Range, selected []string) (*table.Table, error) {
	perSource := make([]map[int]int, len(sources))
	for i, src := range sources {
		if !src.Table.HasColumn(yearColumn) {
			return nil, fmt.Errorf("%w: %q in %s source", table.ErrSchema, yearColumn, src.Label)
		}
		counts := make(map[int]int)
		for r := 0; r < src.Table.Len(); r++ {
			year, ok := parseYear(src.Table.Cell(r, yearColumn))
			if !ok || !span.Contains(year) {
				continue
			}
			counts[year]++
		}
		perSource[i] = counts
	}
	return buildYearTable(sources, span, perSource, selected)
}

// parseYear reads a year cell. A cell that does not parse as an integer is
// treated as out of range rather than an error; the original data compares
// year strings, so such rows never matched there either.
func parseYear(cell string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0, false
	}
	return year, true
}

// buildYearTable assembles the per-year output frame shared by the
// publications and citations engines and applies the section's column
// selection.
func buildYearTable(sources []Source, span yearrange.Range, perSource []map[int]int, selected []string) (*table.Table, error) {
	columns := make([]string, 0, len(sources)+1)
	columns = append(columns, yearColumn)
	for _, src := range sources {
		columns = append(columns, src.Label)
	}

	rows := make([]table.Row, 0, span.End-span.Start+1)
	for _, year := range span.Years() {
		row := table.Row{yearColumn: strconv.Itoa(year)}
		for i, src := range sources {
			row[src.Label] = strconv.Itoa(perSource[i][year])
		}
		rows = append(rows, row)
	}

	t, err := table.New(columns, rows)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return t, nil
	}
	return table.Project(t, selected)
}

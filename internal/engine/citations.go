package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scientometry/dataproc/internal/table"
	"github.com/scientometry/dataproc/internal/yearrange"
)

// SumCitations builds a per-year citation sum table over the named cites
// column, on the same frame as CountPublications. A row inside the span
// whose cites cell is missing or non-numeric is a data error: treating it
// as zero would silently understate the totals.
func SumCitations(sources []Source, span yearrange.Range, citesColumn string, selected []string) (*table.Table, error) {
	perSource := make([]map[int]int, len(sources))
	for i, src := range sources {
		if !src.Table.HasColumn(yearColumn) {
			return nil, fmt.Errorf("%w: %q in %s source", table.ErrSchema, yearColumn, src.Label)
		}
		if !src.Table.HasColumn(citesColumn) {
			return nil, fmt.Errorf("%w: %q in %s source", table.ErrSchema, citesColumn, src.Label)
		}
		sums := make(map[int]int)
		for r := 0; r < src.Table.Len(); r++ {
			year, ok := parseYear(src.Table.Cell(r, yearColumn))
			if !ok || !span.Contains(year) {
				continue
			}
			cell := src.Table.Cell(r, citesColumn)
			cites, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: %s row %d: %s = %q", ErrData, src.Label, r+1, citesColumn, cell)
			}
			sums[year] += cites
		}
		perSource[i] = sums
	}
	return buildYearTable(sources, span, perSource, selected)
}

package engine

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/scientometry/dataproc/internal/table"
)

// papersColumn is the per-journal count column emitted by the journals
// engine.
const papersColumn = "Papers"

// CountJournals counts merged source rows per journal and enriches the
// counts with catalog indicator columns via a strict inner join on the
// catalog key. Journal names match byte-exact: inconsistent name formatting
// in source data yields separate entries, and a journal absent from the
// catalog drops out of the join silently. Rows come out ordered by journal
// name; the drop list removes residual identifier columns before the
// section's column selection is applied.
func CountJournals(merged, catalog *table.Table, journalColumn, catalogKey string, drop, selected []string) (*table.Table, error) {
	if !merged.HasColumn(journalColumn) {
		return nil, fmt.Errorf("%w: %q in merged source", table.ErrSchema, journalColumn)
	}

	counts := make(map[string]int)
	for r := 0; r < merged.Len(); r++ {
		counts[merged.Cell(r, journalColumn)]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, table.Row{
			catalogKey:   name,
			papersColumn: strconv.Itoa(counts[name]),
		})
	}
	countTable, err := table.New([]string{catalogKey, papersColumn}, rows)
	if err != nil {
		return nil, err
	}

	joined, err := table.Join(countTable, catalog, catalogKey)
	if err != nil {
		return nil, err
	}

	t := joined
	if len(drop) > 0 {
		t = table.Drop(t, drop)
	}
	if len(selected) == 0 {
		return t, nil
	}
	return table.Project(t, selected)
}

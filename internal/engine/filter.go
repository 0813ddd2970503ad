package engine

import (
	"fmt"

	"github.com/hashicorp/go-bexpr"

	"github.com/scientometry/dataproc/internal/table"
)

// Filter returns a new table holding only the rows matched by the boolean
// expression. Cells are exposed to the expression by column name, as
// strings, e.g. `Source == "Biologia" and Year != "2005"`.
func Filter(t *table.Table, expr string) (*table.Table, error) {
	ev, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing filter %q: %w", expr, err)
	}

	var rows []table.Row
	for i := 0; i < t.Len(); i++ {
		vars := make(map[string]any, len(t.Columns()))
		for _, c := range t.Columns() {
			vars[c] = t.Cell(i, c)
		}
		ok, err := ev.Evaluate(vars)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter on row %d: %w", i+1, err)
		}
		if ok {
			rows = append(rows, t.Row(i))
		}
	}
	return table.New(t.Columns(), rows)
}

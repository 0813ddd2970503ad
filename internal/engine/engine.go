// Package engine implements the four dataset transformation engines:
// publication counting, citation summation, journal-catalog joining, and
// results-query decomposition.
package engine

import (
	"errors"
	"fmt"

	"github.com/scientometry/dataproc/internal/table"
)

// ErrData indicates a source cell that should be numeric but is not.
var ErrData = errors.New("bad data value")

// Kind selects which transformation a section runs.
type Kind int

const (
	Publications Kind = iota
	Citations
	Journals
	Results
)

// ParseKind maps a configuration "class" value to an engine kind.
func ParseKind(class string) (Kind, error) {
	switch class {
	case "publications":
		return Publications, nil
	case "citations":
		return Citations, nil
	case "journals":
		return Journals, nil
	case "results":
		return Results, nil
	}
	return 0, fmt.Errorf("unknown class %q", class)
}

func (k Kind) String() string {
	switch k {
	case Publications:
		return "publications"
	case Citations:
		return "citations"
	case Journals:
		return "journals"
	case Results:
		return "results"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Source is one named input table. The label identifies the citation
// register the table was exported from and becomes an output column name;
// source order determines output column order.
type Source struct {
	Label string
	Table *table.Table
}

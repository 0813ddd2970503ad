// Package querykey decodes the compound "{group}-{dataset}" identifiers
// found in citation-analysis result tables.
package querykey

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat indicates query-key text without a group/dataset separator.
var ErrFormat = errors.New("invalid query key")

// Key identifies one citation-analysis query: a group (research cohort)
// and the dataset it was measured against.
type Key struct {
	Group   string
	Dataset string
}

// Decompose splits text on the first hyphen. The dataset part may itself
// contain hyphens. Membership of the group in any configured group list is
// checked by the caller, not here.
func Decompose(text string) (Key, error) {
	group, dataset, ok := strings.Cut(text, "-")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q: no separator", ErrFormat, text)
	}
	return Key{Group: group, Dataset: dataset}, nil
}

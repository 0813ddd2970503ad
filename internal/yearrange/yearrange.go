// Package yearrange parses the inclusive publication-year ranges written
// as "YYYY-YYYY" in section configuration.
package yearrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat indicates range text that is not "<start>-<end>" with
// start <= end.
var ErrFormat = errors.New("invalid year range")

// Range is an inclusive range of publication years.
type Range struct {
	Start int
	End   int
}

// Parse parses range text of the form "2000-2016".
func Parse(text string) (Range, error) {
	startText, endText, ok := strings.Cut(text, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrFormat, text)
	}
	start, err := strconv.Atoi(startText)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrFormat, text)
	}
	end, err := strconv.Atoi(endText)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrFormat, text)
	}
	if start > end {
		return Range{}, fmt.Errorf("%w: %q: start after end", ErrFormat, text)
	}
	return Range{Start: start, End: end}, nil
}

// Contains reports whether year lies in the range, inclusive on both ends.
func (r Range) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

// Years returns every year in the range in ascending order.
func (r Range) Years() []int {
	years := make([]int, 0, r.End-r.Start+1)
	for y := r.Start; y <= r.End; y++ {
		years = append(years, y)
	}
	return years
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

package yearrange

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	r, err := Parse("2000-2016")
	if err != nil {
		t.Fatal(err)
	}
	if r.Start != 2000 || r.End != 2016 {
		t.Fatalf("expected 2000-2016, got %v", r)
	}
}

func TestParse_SingleYear(t *testing.T) {
	r, err := Parse("2005-2005")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Years()) != 1 {
		t.Fatalf("expected one year, got %v", r.Years())
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, text := range []string{"", "2000", "2000-", "-2016", "2000-201x", "two-three"} {
		if _, err := Parse(text); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q): expected ErrFormat, got %v", text, err)
		}
	}
}

func TestParse_StartAfterEnd(t *testing.T) {
	if _, err := Parse("2016-2000"); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestContains(t *testing.T) {
	r := Range{Start: 2000, End: 2016}
	for _, tc := range []struct {
		year int
		want bool
	}{
		{1999, false},
		{2000, true},
		{2008, true},
		{2016, true},
		{2017, false},
	} {
		if got := r.Contains(tc.year); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestYears_Ascending(t *testing.T) {
	r := Range{Start: 2000, End: 2003}
	years := r.Years()
	if len(years) != 4 {
		t.Fatalf("expected 4 years, got %v", years)
	}
	for i, want := range []int{2000, 2001, 2002, 2003} {
		if years[i] != want {
			t.Errorf("years[%d] = %d, want %d", i, years[i], want)
		}
	}
}

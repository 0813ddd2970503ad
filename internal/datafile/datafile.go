// Package datafile resolves the date-stamped CSV source files a section
// reads.
//
// Source files are named <section>-<register>-<date>.csv with the register
// lowercased and the date in YYYY-MM-DD form. The file holding merged data
// from all registers uses "merged" as its register; citation-analysis
// results files use "results".
package datafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound indicates no file matches a source pattern.
var ErrNotFound = errors.New("no matching data file")

// Latest is the date token selecting the most recent file version:
// the lexicographically last matching filename, which for YYYY-MM-DD
// stamps is the newest.
const Latest = "latest"

// Register slots with fixed meanings in source filenames.
const (
	MergedRegister  = "merged"
	ResultsRegister = "results"
)

// Prefix returns the filename prefix for a section's register file.
func Prefix(section, register string) string {
	return section + "-" + strings.ToLower(register)
}

// Resolve returns the path of the source file for the given prefix and
// date token inside dir.
func Resolve(dir, prefix, date string) (string, error) {
	if date == Latest {
		matches, err := filepath.Glob(filepath.Join(dir, prefix+"-*.csv"))
		if err != nil {
			return "", fmt.Errorf("globbing %s: %w", prefix, err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("%w: %s-*.csv in %s", ErrNotFound, prefix, dir)
		}
		sort.Strings(matches)
		return matches[len(matches)-1], nil
	}

	path := filepath.Join(dir, prefix+"-"+date+".csv")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return path, nil
}

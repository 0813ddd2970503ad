// Package csvfile reads and writes the CSV files the pipeline consumes and
// produces.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/scientometry/dataproc/internal/table"
)

// utf8BOM is the byte order mark some spreadsheet and register exports
// prepend to the header.
const utf8BOM = "\ufeff"

// Read parses a CSV file into a table. The first record is the header; a
// leading UTF-8 byte order mark is stripped (Scopus and WoS exports carry
// one). Records must be rectangular against the header.
func Read(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: missing header", path)
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rows := make([]table.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(table.Row, len(header))
		for i, cell := range rec {
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}

	t, err := table.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Write renders the table as CSV, header first, and writes the file in a
// single call so an error never leaves a partial file behind.
func Write(t *table.Table, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns()); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	record := make([]string, len(t.Columns()))
	for i := 0; i < t.Len(); i++ {
		for j, c := range t.Columns() {
			record[j] = t.Cell(i, c)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

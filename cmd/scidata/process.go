package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scientometry/dataproc/internal/config"
	"github.com/scientometry/dataproc/internal/csvfile"
	"github.com/scientometry/dataproc/internal/datafile"
	"github.com/scientometry/dataproc/internal/engine"
	"github.com/scientometry/dataproc/internal/storage"
	"github.com/scientometry/dataproc/internal/table"
	"github.com/scientometry/dataproc/internal/yearrange"
)

var (
	processDataDir string
	processDBPath  string
)

func init() {
	processCmd.Flags().StringVar(&processDataDir, "data-dir", "", "Directory holding source data files (default ., or $SCIDATA_DATA_DIR)")
	processCmd.Flags().StringVar(&processDBPath, "db", "", "Also mirror output tables into a SQLite database at this path")
	rootCmd.AddCommand(processCmd)
}

var processCmd = &cobra.Command{
	Use:   "process [SECTION...]",
	Short: "Process configured sections into output tables",
	Long: `Process sections defined in the configuration file.

With no arguments every configured section is processed, in configuration
file order. Section source files are resolved in the data directory as
<section>-<register>-<date>.csv; "date: latest" picks the newest version.

A failing section is reported and skipped; the remaining sections still
run. No output file is written for a failed section.`,
	RunE: runProcess,
}

// output pairs a finished table with its destination file name.
type output struct {
	name  string
	table *table.Table
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	sections, err := cfg.Select(args)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	var db *storage.DB
	if processDBPath != "" {
		db, err = storage.Open(processDBPath)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		defer db.Close()
	}

	failed := 0
	for _, sec := range sections {
		if err := processSection(sec, db); err != nil {
			outputError(ExitDataError, "section %s: %v", sec.Name, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}

// processSection runs one section's engine and writes its outputs. Every
// output table is composed fully in memory before anything touches the
// filesystem, so a failing section writes nothing.
func processSection(sec *config.Section, db *storage.DB) error {
	kind, err := engine.ParseKind(sec.Class)
	if err != nil {
		return err
	}

	var outputs []output
	switch kind {
	case engine.Publications, engine.Citations:
		t, err := runPerYear(sec, kind)
		if err != nil {
			return err
		}
		outputs = append(outputs, output{sec.Name + ".csv", t})
	case engine.Journals:
		t, err := runJournals(sec)
		if err != nil {
			return err
		}
		outputs = append(outputs, output{sec.Name + ".csv", t})
	case engine.Results:
		metrics, err := runResults(sec)
		if err != nil {
			return err
		}
		for _, m := range metrics {
			outputs = append(outputs, output{resultsFileName(sec.Name, m.Metric), m.Table})
		}
	}

	if sec.OutputDir != "" {
		if err := os.MkdirAll(sec.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", sec.OutputDir, err)
		}
	}
	for _, out := range outputs {
		path := filepath.Join(sec.OutputDir, out.name)
		progress("Generating %s ...", path)
		if err := csvfile.Write(out.table, path); err != nil {
			return err
		}
		if db != nil {
			if err := db.SaveTable(storage.TableName(out.name), out.table); err != nil {
				return err
			}
		}
	}
	return nil
}

// runPerYear loads the per-register source tables and runs the publications
// or citations engine.
func runPerYear(sec *config.Section, kind engine.Kind) (*table.Table, error) {
	span, err := yearrange.Parse(sec.Years)
	if err != nil {
		return nil, err
	}

	sources := make([]engine.Source, 0, len(sec.CitationRegisters))
	for _, reg := range sec.CitationRegisters {
		t, err := loadSource(sec, datafile.Prefix(sec.Name, reg))
		if err != nil {
			return nil, err
		}
		sources = append(sources, engine.Source{Label: reg, Table: t})
	}

	if kind == engine.Citations {
		return engine.SumCitations(sources, span, sec.CitesColumn, sec.Select)
	}
	return engine.CountPublications(sources, span, sec.Select)
}

func runJournals(sec *config.Section) (*table.Table, error) {
	merged, err := loadSource(sec, datafile.Prefix(sec.Name, datafile.MergedRegister))
	if err != nil {
		return nil, err
	}
	catalog, err := csvfile.Read(filepath.Join(dataDir(), sec.JournalCatalogFile))
	if err != nil {
		return nil, err
	}
	return engine.CountJournals(merged, catalog, sec.JournalColumn, sec.CatalogKey, sec.Drop, sec.Select)
}

func runResults(sec *config.Section) ([]engine.MetricTable, error) {
	results, err := loadSource(sec, datafile.Prefix(sec.Name, datafile.ResultsRegister))
	if err != nil {
		return nil, err
	}
	return engine.ExtractResults(results, sec.QueryColumn, sec.Groups, sec.Extract, sec.Select)
}

// loadSource resolves and reads one source file, applying the section's
// row filter when one is configured.
func loadSource(sec *config.Section, prefix string) (*table.Table, error) {
	path, err := datafile.Resolve(dataDir(), prefix, sec.Date)
	if err != nil {
		return nil, err
	}
	t, err := csvfile.Read(path)
	if err != nil {
		return nil, err
	}
	if sec.Filter == "" {
		return t, nil
	}
	return engine.Filter(t, sec.Filter)
}

// dataDir returns the source data directory: the --data-dir flag, then
// SCIDATA_DATA_DIR, then the working directory.
func dataDir() string {
	if processDataDir != "" {
		return processDataDir
	}
	if env := os.Getenv("SCIDATA_DATA_DIR"); env != "" {
		return env
	}
	return "."
}

// resultsFileName builds the output file name for one extracted metric:
// the metric is lowercased and spaces become dashes.
func resultsFileName(section, metric string) string {
	slug := strings.ReplaceAll(strings.ToLower(metric), " ", "-")
	return section + "-" + slug + ".csv"
}

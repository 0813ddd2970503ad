// Package main provides the scidata CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// configFile is the -c/--config flag, shared by every command that reads
// the configuration.
var configFile string

func main() {
	// A .env file may supply SCIDATA_CONFIG and SCIDATA_DATA_DIR defaults.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scidata",
	Short: "Scientometric data processing CLI",
	Long: `scidata turns raw bibliometric exports into analysis-ready tables.

Source CSV exports (Scopus, Web of Science, ...) are aggregated per section
of a YAML configuration file: publication counts and citation sums per year,
per-journal paper counts joined against a journal catalog, and
citation-analysis results pivoted into group-by-dataset tables.

Outputs are CSV files ready for plotting tools, optionally mirrored into a
SQLite database for ad-hoc SQL queries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file (default config.yaml, or $SCIDATA_CONFIG)")
	rootCmd.Version = Version
}

// configPath returns the configuration file path: the --config flag, then
// SCIDATA_CONFIG, then config.yaml.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if env := os.Getenv("SCIDATA_CONFIG"); env != "" {
		return env
	}
	return "config.yaml"
}

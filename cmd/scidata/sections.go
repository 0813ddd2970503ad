package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scientometry/dataproc/internal/config"
)

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List configured sections and their classes",
	RunE:  runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	for _, sec := range cfg.Sections() {
		fmt.Printf("%-24s %s\n", sec.Name, sec.Class)
	}
	return nil
}

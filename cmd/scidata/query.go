package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scientometry/dataproc/internal/storage"
)

var queryCSV bool

func init() {
	queryCmd.Flags().BoolVar(&queryCSV, "csv", false, "Output CSV")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <db> <sql>",
	Short: "Run an ad-hoc SQL query over a SQLite mirror",
	Long: `Run a SQL query against a database produced by 'process --db'.

Table names are output file names with the .csv suffix removed and dashes
replaced by underscores.

Examples:
  scidata query out.db "SELECT * FROM ecology"
  scidata query out.db "SELECT Year, Scopus FROM ecology" --csv`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	cols, rows, err := db.Query(args[1])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if queryCSV {
		w := csv.NewWriter(os.Stdout)
		if err := w.Write(cols); err != nil {
			return err
		}
		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	fmt.Println(strings.Join(cols, "\t"))
	for _, row := range rows {
		fmt.Println(strings.Join(row, "\t"))
	}
	return nil
}

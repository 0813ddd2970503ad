package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// progressColor tints the per-file progress lines.
var progressColor = color.New(color.FgGreen)

// progress prints a file-generation progress line to stdout.
func progress(format string, args ...interface{}) {
	progressColor.Printf(format+"\n", args...)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError writes an error message to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

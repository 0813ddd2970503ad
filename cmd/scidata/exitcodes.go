package main

// Exit codes returned by the scidata commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing or invalid config)
	ExitDataError   = 3 // Data error (malformed source data, failed section)
)

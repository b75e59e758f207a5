// Package exitcodes defines the process exit codes used by appgen.
package exitcodes

const (
	// OK means the run completed successfully.
	OK = 0
	// GeneralError covers unexpected failures.
	GeneralError = 1
	// UsageError means the command was invoked incorrectly.
	UsageError = 2
	// ConfigError means a project config file is missing or invalid.
	ConfigError = 3
	// FileSystemError means the target directory could not be written.
	FileSystemError = 4
	// Cancelled means the user aborted the interactive session.
	Cancelled = 130
)

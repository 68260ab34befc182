// Package domain provides core types for the prompt builder.
package domain

// ExitCode represents the exit status of a run.
type ExitCode int

const (
	// ExitOK indicates the prompt was assembled and copied.
	ExitOK ExitCode = 0
	// ExitError indicates the run failed due to an error.
	ExitError ExitCode = 1
	// ExitInterrupted indicates the run was interrupted by a signal.
	ExitInterrupted ExitCode = 130
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}

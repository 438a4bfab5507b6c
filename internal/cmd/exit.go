package cmd

import "fmt"

// ExitError carries a process exit status for runs whose report was already printed
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("hooks failed (exit status %d)", e.Code)
}

// ExitCode implements kong's exit coder
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Package collect gathers resume content from line-based interactive prompts.
package collect

import "fmt"

// ReadError represents a failure reading from the input stream other than end of input
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("read error: %s", e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

package diag

import (
	"fmt"

	"src.3code.sh/pkg/strutil"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
	// Cause is the underlying error. Error unwraps to it, so that callers can
	// use errors.As to find out what kind of error it is.
	Cause error
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Context.Describe(), e.Message)
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: %s%s%s\n", strutil.Title(e.Type), messageStart, e.Message, messageEnd)
	return header + e.Context.ShowCompact(indent+"  ")
}

var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

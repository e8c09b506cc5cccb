// Package errs declares the kinds of errors that abort the evaluation of a
// unit of 3code source.
//
// The evaluator wraps these in a *diag.Error that points at the offending
// token; use errors.As to recover the kind.
package errs

import (
	"fmt"
	"strconv"
)

// IncompleteAssignment is the error when "=" ends the unit.
type IncompleteAssignment struct{}

func (IncompleteAssignment) Error() string {
	return "incomplete assignment: = must be followed by a variable"
}

// AssignmentToNonVariable is the error when "=" is followed by something
// that is not a variable.
type AssignmentToNonVariable struct {
	Target string
}

func (e AssignmentToNonVariable) Error() string {
	return "assignment to non-variable " + strconv.Quote(e.Target)
}

// IncompleteConditional is the error when the unit ends while skipping a
// branch of a conditional.
type IncompleteConditional struct {
	// Keyword is the keyword that started the skip, "then" or "else".
	Keyword string
	// Want describes what was being searched for.
	Want string
}

func (e IncompleteConditional) Error() string {
	return fmt.Sprintf("incomplete conditional: no %s after %s", e.Want, e.Keyword)
}

// InvalidFunctionDefinition is the error for a malformed "F" form.
type InvalidFunctionDefinition struct {
	// Name is the function name, empty if the name itself is missing.
	Name   string
	Reason string
}

func (e InvalidFunctionDefinition) Error() string {
	if e.Name == "" {
		return "invalid function definition: " + e.Reason
	}
	return fmt.Sprintf("invalid function definition %q: %s", e.Name, e.Reason)
}

// UndefinedFunction is the error when no function is registered with the
// name and arity of a call.
type UndefinedFunction struct {
	Name  string
	Arity int
}

func (e UndefinedFunction) Error() string {
	return fmt.Sprintf("no function %q with support for %d argument(s)", e.Name, e.Arity)
}

// IncompleteStatement is the error when the unit ends before the "]" of a
// call.
type IncompleteStatement struct {
	Name string
}

func (e IncompleteStatement) Error() string {
	return fmt.Sprintf("incomplete statement: call to %q is missing ]", e.Name)
}

// UnknownToken is the error for a token that is neither a variable, a
// number nor the name of a call.
type UnknownToken struct {
	Token string
}

func (e UnknownToken) Error() string {
	return "unknown token " + strconv.Quote(e.Token)
}

// CallDepthExceeded is the error when user function calls nest deeper than
// the evaluator allows, typically because of unbounded recursion.
type CallDepthExceeded struct {
	Name  string
	Limit int
}

func (e CallDepthExceeded) Error() string {
	return fmt.Sprintf("call to %q exceeds the maximum call depth of %d", e.Name, e.Limit)
}

package eval

import (
	"errors"

	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/eval/errs"
	"src.3code.sh/pkg/parse"
)

// Def is a function definition found by Check.
type Def struct {
	FnKey
	NameToken parse.Token
	Body      []parse.Token
}

// Report is the result of Check.
type Report struct {
	Errors []*diag.Error
	// Warnings are problems that only show up for some values, like a "then"
	// with nothing to skip to when its condition is false.
	Warnings []*diag.Error
	Defs     []Def
}

// Check checks a unit of source for errors that can be found without
// evaluating it. Unlike Eval, it does not stop at the first error.
//
// Check cannot know which functions will exist when the unit runs, so calls
// are never reported as undefined. Both branches of every conditional are
// checked, and conditionals that are not closed are reported as warnings.
func Check(src *parse.Source) Report {
	var ch checker
	ch.unit(parse.NewCursor(parse.Tokenize(src)))
	return ch.report
}

// CheckLines is like Check, but checks each line of src as a separate unit.
func CheckLines(src *parse.Source) Report {
	var ch checker
	for _, line := range parse.Lines(src) {
		ch.unit(parse.NewCursor(line))
	}
	return ch.report
}

type checker struct {
	report Report
}

func (ch *checker) errorAt(tok parse.Token, cause error) {
	ch.report.Errors = append(ch.report.Errors, problemAt("check error", tok, cause))
}

func (ch *checker) warnAt(tok parse.Token, cause error) {
	ch.report.Warnings = append(ch.report.Warnings, problemAt("check warning", tok, cause))
}

func problemAt(typ string, tok parse.Token, cause error) *diag.Error {
	return &diag.Error{
		Type:    typ,
		Message: cause.Error(),
		Context: *tok.Context(),
		Cause:   cause,
	}
}

func (ch *checker) unit(c *parse.Cursor) {
	for {
		tok, ok := c.Current()
		if !ok {
			return
		}
		switch {
		case tok.Text == parse.Define:
			if !ch.define(c) {
				// The rest of the unit can't be told apart from the body.
				return
			}
		case tok.Text == parse.Assign && !c.PeekSecond(parse.OpenCall):
			ch.assign(c)
		case tok.Text == parse.Then:
			ch.expectLater(c, errs.IncompleteConditional{Keyword: parse.Then, Want: "else or ?"},
				parse.Else, parse.EndCond)
			c.Advance()
		case tok.Text == parse.Else:
			ch.expectLater(c, errs.IncompleteConditional{Keyword: parse.Else, Want: "?"},
				parse.EndCond)
			c.Advance()
		case tok.Text == parse.EndCond:
			c.Advance()
		default:
			ch.statement(c)
		}
	}
}

func (ch *checker) define(c *parse.Cursor) bool {
	name, arity, body, err := scanDefinition(c)
	if err != nil {
		var derr *diag.Error
		if errors.As(err, &derr) {
			ch.report.Errors = append(ch.report.Errors, &diag.Error{
				Type: "check error", Message: derr.Message, Context: derr.Context, Cause: derr.Cause})
		}
		return false
	}
	key := FnKey{name.Text, arity}
	switch {
	case parse.IsVariable(name.Text):
		ch.errorAt(name, errs.InvalidFunctionDefinition{Name: name.Text, Reason: "a variable cannot be a function name"})
	case len(body) == 0:
		ch.errorAt(name, errs.InvalidFunctionDefinition{Name: name.Text, Reason: "empty body"})
	case isBuiltin(key):
		ch.errorAt(name, errs.InvalidFunctionDefinition{Name: name.Text, Reason: "cannot redefine builtin"})
	default:
		ch.report.Defs = append(ch.report.Defs, Def{key, name, body})
		ch.unit(parse.NewCursor(body))
	}
	return true
}

func (ch *checker) assign(c *parse.Cursor) {
	eqTok, _ := c.Current()
	if !c.Advance() {
		ch.errorAt(eqTok, errs.IncompleteAssignment{})
		return
	}
	target, _ := c.Current()
	if !parse.IsVariable(target.Text) {
		ch.errorAt(target, errs.AssignmentToNonVariable{Target: target.Text})
	}
	c.Advance()
}

// Warns about err at the current token unless one of the given texts appears
// after it. Does not consume anything.
func (ch *checker) expectLater(c *parse.Cursor, err error, texts ...string) {
	tok, _ := c.Current()
	for _, later := range c.Rest()[1:] {
		for _, text := range texts {
			if later.Text == text {
				return
			}
		}
	}
	ch.warnAt(tok, err)
}

func (ch *checker) statement(c *parse.Cursor) {
	tok, _ := c.Current()
	switch {
	case parse.IsVariable(tok.Text):
		c.Advance()
	case c.PeekSecond(parse.OpenCall):
		c.Advance()
		c.Advance()
		for !c.Is(parse.CloseCall) {
			if c.Empty() {
				ch.errorAt(tok, errs.IncompleteStatement{Name: tok.Text})
				return
			}
			ch.statement(c)
		}
		c.Advance()
	default:
		if _, ok := parse.ParseNumber(tok.Text); !ok {
			ch.errorAt(tok, errs.UnknownToken{Token: tok.Text})
		}
		c.Advance()
	}
}

func isBuiltin(key FnKey) bool {
	for _, b := range builtins {
		if b == key {
			return true
		}
	}
	return false
}

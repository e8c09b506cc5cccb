package eval

import (
	"src.3code.sh/pkg/eval/errs"
	"src.3code.sh/pkg/parse"
)

// Runs the top-level loop over c until it is exhausted or a step fails.
// The function bodies are run by the same loop.
func (ev *Evaler) run(c *parse.Cursor) error {
	for {
		tok, ok := c.Current()
		if !ok {
			return nil
		}
		var err error
		switch {
		case tok.Text == parse.Define:
			err = ev.define(c)
		case tok.Text == parse.Assign && !c.PeekSecond(parse.OpenCall):
			err = ev.assign(c)
		case tok.Text == parse.Then:
			err = ev.then(c)
		case tok.Text == parse.Else:
			err = ev.skipElse(c)
		case tok.Text == parse.EndCond:
			// Only marks the end of a conditional.
			c.Advance()
		default:
			err = ev.statement(c)
		}
		if err != nil {
			return err
		}
	}
}

// Handles "F name arity body... F".
func (ev *Evaler) define(c *parse.Cursor) error {
	name, arity, body, err := scanDefinition(c)
	if err != nil {
		return err
	}
	if err := ev.Define(name.Text, arity, body); err != nil {
		return errorAt(name, err)
	}
	return nil
}

// Consumes a function definition from c, which must be positioned at the
// leading F, and returns its parts. The terminating F is consumed too.
func scanDefinition(c *parse.Cursor) (name parse.Token, arity int, body []parse.Token, err error) {
	fTok, _ := c.Current()
	if !c.Advance() {
		return name, 0, nil, errorAt(fTok, errs.InvalidFunctionDefinition{Reason: "missing name"})
	}
	name, _ = c.Current()
	if !c.Advance() {
		return name, 0, nil, errorAt(name, errs.InvalidFunctionDefinition{Name: name.Text, Reason: "missing arity"})
	}
	arityTok, _ := c.Current()
	arity, ok := parse.ParseArity(arityTok.Text)
	if !ok {
		return name, 0, nil, errorAt(arityTok, errs.InvalidFunctionDefinition{
			Name: name.Text, Reason: "arity must be an integer from 0 to 3"})
	}
	for c.Advance() {
		tok, _ := c.Current()
		if tok.Text == parse.Define {
			c.Advance()
			return name, arity, body, nil
		}
		body = append(body, tok)
	}
	return name, arity, body, errorAt(fTok, errs.InvalidFunctionDefinition{
		Name: name.Text, Reason: "missing terminating F"})
}

// Handles "= variable", storing the current value into the variable.
func (ev *Evaler) assign(c *parse.Cursor) error {
	eqTok, _ := c.Current()
	if !c.Advance() {
		return errorAt(eqTok, errs.IncompleteAssignment{})
	}
	target, _ := c.Current()
	if !parse.IsVariable(target.Text) {
		return errorAt(target, errs.AssignmentToNonVariable{Target: target.Text})
	}
	ev.SetVar(target.Text, ev.value)
	c.Advance()
	return nil
}

// Handles "then". If the current value is true (non-zero), only "then" is
// consumed and the loop goes on to run the true branch. Otherwise everything
// up to and including the next "else" or "?" is skipped.
func (ev *Evaler) then(c *parse.Cursor) error {
	thenTok, _ := c.Current()
	if ev.value != 0 {
		c.Advance()
		return nil
	}
	for c.Advance() {
		if c.Is(parse.Else) || c.Is(parse.EndCond) {
			c.Advance()
			return nil
		}
	}
	return errorAt(thenTok, errs.IncompleteConditional{Keyword: parse.Then, Want: "else or ?"})
}

// Handles "else", which is only reached after running a true branch. It
// skips everything up to and including the next "?".
func (ev *Evaler) skipElse(c *parse.Cursor) error {
	elseTok, _ := c.Current()
	for c.Advance() {
		if c.Is(parse.EndCond) {
			c.Advance()
			return nil
		}
	}
	return errorAt(elseTok, errs.IncompleteConditional{Keyword: parse.Else, Want: "?"})
}

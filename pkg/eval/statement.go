package eval

import (
	"errors"

	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/eval/errs"
	"src.3code.sh/pkg/parse"
)

// Evaluates one statement at the front of c and leaves c right after it. The
// result is stored in the current value. The caller guarantees that c is not
// empty.
//
// A statement is, in order of precedence:
//
//   - a variable;
//   - a call, "name [ statement... ]";
//   - a number.
func (ev *Evaler) statement(c *parse.Cursor) error {
	tok, _ := c.Current()
	switch {
	case parse.IsVariable(tok.Text):
		ev.value = ev.Var(tok.Text)
		c.Advance()
		return nil
	case c.PeekSecond(parse.OpenCall):
		return ev.callStatement(c)
	}
	if f, ok := parse.ParseNumber(tok.Text); ok {
		ev.value = f
		c.Advance()
		return nil
	}
	return errorAt(tok, errs.UnknownToken{Token: tok.Text})
}

func (ev *Evaler) callStatement(c *parse.Cursor) error {
	nameTok, _ := c.Current()
	c.Advance()
	c.Advance()

	var args []float64
	for !c.Is(parse.CloseCall) {
		if c.Empty() {
			return errorAt(nameTok, errs.IncompleteStatement{Name: nameTok.Text})
		}
		if err := ev.statement(c); err != nil {
			return err
		}
		args = append(args, ev.value)
	}
	c.Advance()

	fn, ok := ev.LookupFn(nameTok.Text, len(args))
	if !ok {
		return errorAt(nameTok, errs.UndefinedFunction{Name: nameTok.Text, Arity: len(args)})
	}
	err := ev.call(fn, args)
	// Errors from the body of a user function already point into the body.
	var derr *diag.Error
	if err != nil && !errors.As(err, &derr) {
		return errorAt(nameTok, err)
	}
	return err
}

// Package eval implements the evaluator of 3code.
//
// An Evaler keeps all the state of an interpreter: the current value, the
// scope stack and the function table. Source is evaluated one unit at a time
// (conventionally one line) with Eval; an error aborts the rest of the unit,
// but leaves the Evaler usable for the next one.
package eval

import (
	"io"
	"os"

	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/logutil"
	"src.3code.sh/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// DefaultMaxDepth is the default limit of nested user function calls.
const DefaultMaxDepth = 10000

// Evaler maintains the state of an interpreter between units. It is not
// safe for concurrent use.
type Evaler struct {
	// The current value register. Every literal, variable read and function
	// call stores its result here.
	value float64
	// The scope stack. frames[0] is the global frame and is never popped.
	frames []Frame
	fns    map[FnKey]*Fn

	out io.Writer
	enc *Encoding

	// MaxDepth limits nesting of user function calls.
	MaxDepth int
}

// NewEvaler creates a new Evaler with only the global frame, the built-in
// functions and output going to os.Stdout in UTF-8.
func NewEvaler() *Evaler {
	ev := &Evaler{
		frames:   make([]Frame, 1, 8),
		fns:      make(map[FnKey]*Fn, len(builtins)),
		out:      os.Stdout,
		enc:      UTF8,
		MaxDepth: DefaultMaxDepth,
	}
	for _, key := range builtins {
		ev.fns[key] = &Fn{FnKey: key}
	}
	return ev
}

// SetOutput sets the writer that print, println, write and nl write to.
func (ev *Evaler) SetOutput(w io.Writer) { ev.out = w }

// SetEncoding sets the encoding used by the write built-in.
func (ev *Evaler) SetEncoding(enc *Encoding) { ev.enc = enc }

// EvalCfg keeps configuration for (*Evaler).Eval.
type EvalCfg struct {
	// Output to use for this unit only. If nil, the output of the Evaler is
	// used.
	Out io.Writer
}

// Eval evaluates one unit of source. If evaluation fails, the rest of the
// unit is skipped and the current value is restored to what it was before
// the unit. Everything else done before the failure, like assignments and
// definitions, is kept.
//
// Errors caused by the source are *diag.Error values wrapping one of the
// kinds declared in the errs package.
func (ev *Evaler) Eval(src parse.Source, cfg EvalCfg) error {
	if cfg.Out != nil {
		defer func(old io.Writer) { ev.out = old }(ev.out)
		ev.out = cfg.Out
	}
	return ev.evalUnit(src.Name, parse.Tokenize(&src))
}

// EvalLines evaluates each line of src as a separate unit, as Eval would do if
// the lines were given one by one. Unlike calling Eval for every line, error
// positions are reported relative to the whole of src. It returns the errors
// of the lines that failed.
func (ev *Evaler) EvalLines(src parse.Source, cfg EvalCfg) []error {
	if cfg.Out != nil {
		defer func(old io.Writer) { ev.out = old }(ev.out)
		ev.out = cfg.Out
	}
	var failed []error
	for _, line := range parse.Lines(&src) {
		if err := ev.evalUnit(src.Name, line); err != nil {
			failed = append(failed, err)
		}
	}
	return failed
}

func (ev *Evaler) evalUnit(name string, tokens []parse.Token) error {
	saved := ev.value
	err := ev.run(parse.NewCursor(tokens))
	if err != nil {
		ev.value = saved
		logger.Printf("unit %s failed: %v", name, err)
	}
	return err
}

// Value returns the current value.
func (ev *Evaler) Value() float64 { return ev.value }

// Depth returns the number of frames on the scope stack, including the
// global frame.
func (ev *Evaler) Depth() int { return len(ev.frames) }

// Wraps an error kind from the errs package into a *diag.Error pointing at
// tok.
func errorAt(tok parse.Token, cause error) error {
	return &diag.Error{
		Type:    "eval error",
		Message: cause.Error(),
		Context: *tok.Context(),
		Cause:   cause,
	}
}

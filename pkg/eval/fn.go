package eval

import (
	"sort"

	"github.com/alecthomas/repr"
	"src.3code.sh/pkg/eval/errs"
	"src.3code.sh/pkg/parse"
)

// FnKey identifies a function. Functions with the same name but different
// arities are unrelated.
type FnKey struct {
	Name  string
	Arity int
}

// Fn is an entry of the function table.
type Fn struct {
	FnKey
	// Body is the code of a user function. It is never modified; every call
	// evaluates a fresh cursor over it. Built-in functions have no body.
	Body []parse.Token
}

// IsBuiltin reports whether the function is a built-in.
func (fn *Fn) IsBuiltin() bool { return len(fn.Body) == 0 }

// MaxArity is the largest number of arguments a function can take.
const MaxArity = 3

// Define adds a user function to the function table, replacing any user
// function with the same name and arity. Built-in functions cannot be
// replaced, but a user function may share a name with a built-in as long as
// the arities differ.
func (ev *Evaler) Define(name string, arity int, body []parse.Token) error {
	switch {
	case parse.IsVariable(name):
		return errs.InvalidFunctionDefinition{Name: name, Reason: "a variable cannot be a function name"}
	case arity < 0 || arity > MaxArity:
		return errs.InvalidFunctionDefinition{Name: name, Reason: "arity must be an integer from 0 to 3"}
	case len(body) == 0:
		return errs.InvalidFunctionDefinition{Name: name, Reason: "empty body"}
	}
	key := FnKey{name, arity}
	if old, ok := ev.fns[key]; ok && old.IsBuiltin() {
		return errs.InvalidFunctionDefinition{Name: name, Reason: "cannot redefine builtin"}
	}
	ev.fns[key] = &Fn{key, append([]parse.Token(nil), body...)}
	logger.Printf("defined %s/%d as %s", name, arity, repr.String(parse.Texts(body)))
	return nil
}

// Functions returns all entries of the function table, ordered by name and
// then arity.
func (ev *Evaler) Functions() []*Fn {
	fns := make([]*Fn, 0, len(ev.fns))
	for _, fn := range ev.fns {
		fns = append(fns, fn)
	}
	sort.Slice(fns, func(i, j int) bool {
		a, b := fns[i], fns[j]
		return a.Name < b.Name || (a.Name == b.Name && a.Arity < b.Arity)
	})
	return fns
}

// LookupFn finds the function with the given name and arity.
func (ev *Evaler) LookupFn(name string, arity int) (*Fn, bool) {
	fn, ok := ev.fns[FnKey{name, arity}]
	return fn, ok
}

// Call calls a function with the given arguments. The arity of the call is
// the number of arguments. On success, the current value holds the result.
func (ev *Evaler) Call(name string, args ...float64) error {
	fn, ok := ev.LookupFn(name, len(args))
	if !ok {
		return errs.UndefinedFunction{Name: name, Arity: len(args)}
	}
	return ev.call(fn, args)
}

func (ev *Evaler) call(fn *Fn, args []float64) error {
	if fn.IsBuiltin() {
		return ev.callBuiltin(fn.Name, args)
	}
	if len(ev.frames) > ev.MaxDepth {
		return errs.CallDepthExceeded{Name: fn.Name, Limit: ev.MaxDepth}
	}
	defer ev.pushFrame(args)()
	return ev.run(parse.NewCursor(fn.Body))
}

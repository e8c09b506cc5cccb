// Package evaltest provides a framework for testing 3code source.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("println [ + [ 1 2 ] ]").Prints("3\n"),
//	    That("2 = y").Sets("y", 2),
//	    That("foo [ ]").Throws(errs.UndefinedFunction{Name: "foo", Arity: 0}))
//
// If some setup is needed, use the TestWithSetup function instead.
package evaltest

import (
	"bytes"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/eval"
	"src.3code.sh/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	units  []string
	setup  func(ev *eval.Evaler)
	verify func(t *testing.T, ev *eval.Evaler)
	want   result
}

type result struct {
	Output []byte
	Vars   map[string]float64
	Value  *float64
	Err    error
}

// That returns a new Case. Each argument is evaluated as a separate unit, in
// order, by the same Evaler.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "1 = x" sets x to 1 reads:
//
//	That("1 = x").Sets("x", 1)
func That(units ...string) Case {
	return Case{units: units}
}

// Then returns a new Case that evaluates the given units in addition.
func (c Case) Then(units ...string) Case {
	c.units = append(append([]string(nil), c.units...), units...)
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// Evaler before any unit is evaluated.
func (c Case) WithSetup(f func(*eval.Evaler)) Case {
	c.setup = f
	return c
}

// DoesNothing returns c unchanged. It is useful to mark tests that don't have
// any visible effect, for example:
//
//	That("?").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// Passes returns an altered Case that runs an additional verification
// function after all units have been evaluated.
func (c Case) Passes(f func(t *testing.T, ev *eval.Evaler)) Case {
	c.verify = f
	return c
}

// Prints returns an altered Case that requires the units to write exactly the
// given output.
func (c Case) Prints(s string) Case {
	c.want.Output = []byte(s)
	return c
}

// Sets returns an altered Case that requires a variable to have the given
// value afterwards. It can be chained to check several variables.
func (c Case) Sets(name string, v float64) Case {
	vars := make(map[string]float64, len(c.want.Vars)+1)
	for k, v := range c.want.Vars {
		vars[k] = v
	}
	vars[name] = v
	c.want.Vars = vars
	return c
}

// Leaves returns an altered Case that requires the current value to be v
// afterwards.
func (c Case) Leaves(v float64) Case {
	c.want.Value = &v
	return c
}

// Throws returns an altered Case that requires the last failing unit to fail
// with the given error kind, compared with reflect.DeepEqual against the
// cause of the *diag.Error. Use AnyError to accept any error.
func (c Case) Throws(kind error) Case {
	c.want.Err = kind
	return c
}

// AnyError is an error kind that matches any error.
var AnyError error = anyError{}

type anyError struct{}

func (anyError) Error() string { return "any error" }

// Test runs test cases. For each test case, a new Evaler is created with
// NewEvaler.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Evaler is created
// with NewEvaler and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.units, "\n"), func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			setup(ev)
			if tc.setup != nil {
				tc.setup(ev)
			}

			var out bytes.Buffer
			ev.SetOutput(&out)
			var lastErr error
			for _, unit := range tc.units {
				err := ev.Eval(parse.Source{Name: "[test]", Code: unit}, eval.EvalCfg{})
				if err != nil {
					lastErr = err
				}
			}

			if tc.verify != nil {
				tc.verify(t, ev)
			}
			if !bytes.Equal(tc.want.Output, out.Bytes()) {
				t.Errorf("got output %q, want %q", out.Bytes(), tc.want.Output)
			}
			if got := gotVars(ev, tc.want.Vars); !cmp.Equal(tc.want.Vars, got) {
				t.Errorf("got variables (-want +got):\n%s", cmp.Diff(tc.want.Vars, got))
			}
			if tc.want.Value != nil && ev.Value() != *tc.want.Value {
				t.Errorf("got current value %v, want %v", ev.Value(), *tc.want.Value)
			}
			if !matchErr(tc.want.Err, lastErr) {
				t.Errorf("got error %v (%T), want %v", lastErr, errorKind(lastErr), tc.want.Err)
			}
			if depth := ev.Depth(); depth != 1 {
				t.Errorf("scope stack has %d frames after evaluation, want 1", depth)
			}
		})
	}
}

// Returns the values of the variables named in want, so that unchecked
// variables don't show up in diffs.
func gotVars(ev *eval.Evaler, want map[string]float64) map[string]float64 {
	if want == nil {
		return nil
	}
	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)
	got := make(map[string]float64, len(names))
	for _, name := range names {
		got[name] = ev.Var(name)
	}
	return got
}

func errorKind(err error) error {
	var derr *diag.Error
	if errors.As(err, &derr) && derr.Cause != nil {
		return derr.Cause
	}
	return err
}

func matchErr(want, got error) bool {
	if want == nil || got == nil {
		return want == nil && got == nil
	}
	if want == AnyError {
		return true
	}
	return reflect.DeepEqual(want, errorKind(got))
}

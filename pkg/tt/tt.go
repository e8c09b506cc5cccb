// Package tt supports table-driven tests with little boilerplate.
//
// A table is a list of cases built with Args(...).Rets(...); Test calls the
// function under test with each case's arguments and compares the return
// values using go-cmp:
//
//	tt.Test(t, "ParseNumber", parse.ParseNumber, tt.Table{
//		tt.Args("1.5").Rets(1.5, true),
//		tt.Args("..").Rets(0.0, false),
//	})
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case is one row of a Table.
type Case struct {
	args []any
	rets []any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets sets the return values the case expects, and returns the receiver.
func (c *Case) Rets(rets ...any) *Case {
	c.rets = rets
	return c
}

// T is the subset of testing.T used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test calls fn with the arguments of every case and reports cases whose
// return values differ from the expected ones.
func Test(t T, name string, fn any, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn, test.args)
		if diff := cmp.Diff(test.rets, rets); diff != "" {
			t.Errorf("%s(%s) returns (-want +got):\n%s", name, sprintArgs(test.args), diff)
		}
	}
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) is not a usable argument; use a zero value
			// of the parameter's type instead.
			in[i] = reflect.Zero(fnType.In(i))
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}
	out := fnValue.Call(in)
	rets := make([]any, len(out))
	for i, v := range out {
		rets[i] = v.Interface()
	}
	return rets
}

func sprintArgs(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%#v", arg)
	}
	return strings.Join(parts, ", ")
}

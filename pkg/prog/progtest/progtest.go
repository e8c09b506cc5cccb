// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program to test, and any number of test cases.
//
// Test cases are constructed using the ThatProgram function, followed by
// method calls that add additional information to it.
//
// Example:
//
//	Test(t, &shell.Program{},
//	    ThatProgram("-c", "println [ 1 ]").WritesStdout("1\n"),
//	    ThatProgram("-c", "foo [ ]").ExitsWith(2).WritesStderrContaining("no function"),
//	)
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.3code.sh/pkg/must"
	"src.3code.sh/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	stdout     output
	stderr     output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string { return "`" + s + "`" }

// ThatProgram returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "3code -c hello" exits with 2 and
// writes "unknown token" to stderr reads:
//
//	ThatProgram("-c", "hello").ExitsWith(2).WritesStderrContaining("unknown token")
func ThatProgram(args ...string) Case {
	return Case{args: append([]string{"3code"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin
// of the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatProgram("-help").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if c.want.exitStatus != r.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !matchOutput(c.want.stdout, r.stdout) {
				t.Errorf("got stdout %v, want %v", r.stdout, c.want.stdout)
			}
			if !matchOutput(c.want.stderr, r.stderr) {
				t.Errorf("got stderr %v, want %v", r.stderr, c.want.stderr)
			}
		})
	}
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := must.Pipe()
	// TODO: This assumes that stdin fits in the pipe buffer. Write in a
	// separate goroutine if larger inputs are needed.
	must.OK1(w0.WriteString(stdin))
	w0.Close()
	defer r0.Close()

	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Drain stdout and stderr concurrently so that a program writing a lot
	// of output doesn't block.
	stdoutCh := readAllAsync(r1)
	stderrCh := readAllAsync(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	return result{exit, output{content: <-stdoutCh}, output{content: <-stderrCh}}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.OK1(io.ReadAll(r)))
		r.Close()
	}()
	return ch
}

func matchOutput(want, got output) bool {
	if want.partial {
		return strings.Contains(got.content, want.content)
	}
	return want.content == got.content
}

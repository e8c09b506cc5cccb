package eval

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// The built-in functions. They have no body; callBuiltin dispatches them by
// name.
var builtins = []FnKey{
	{"+", 2}, {"-", 2}, {"*", 2}, {"/", 2},
	{">", 2}, {"<", 2}, {"=", 2}, {">=", 2}, {"<=", 2},
	{"print", 1}, {"write", 1}, {"println", 1},
	{"nl", 0},
}

// Builtins returns the keys of all built-in functions.
func Builtins() []FnKey {
	return append([]FnKey(nil), builtins...)
}

func (ev *Evaler) callBuiltin(name string, args []float64) error {
	switch name {
	case "+":
		ev.value = args[0] + args[1]
	case "-":
		ev.value = args[0] - args[1]
	case "*":
		ev.value = args[0] * args[1]
	case "/":
		ev.value = args[0] / args[1]
	case ">":
		ev.value = truth(args[0] > args[1])
	case "<":
		ev.value = truth(args[0] < args[1])
	case "=":
		ev.value = truth(args[0] == args[1])
	case ">=":
		ev.value = truth(args[0] >= args[1])
	case "<=":
		ev.value = truth(args[0] <= args[1])
	case "print":
		return ev.output(FormatNumber(args[0]))
	case "println":
		return ev.output(FormatNumber(args[0]) + "\n")
	case "write":
		return ev.output(ev.enc.EncodeCode(args[0]))
	case "nl":
		return ev.output("\n")
	default:
		panic(fmt.Sprintf("eval: no implementation of builtin %q", name))
	}
	return nil
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (ev *Evaler) output(s string) error {
	_, err := io.WriteString(ev.out, s)
	if err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

// FormatNumber formats a number the way print and println do: in the
// shortest of decimal and exponent notation, with at most 6 significant
// digits.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

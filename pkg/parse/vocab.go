package parse

import (
	"strconv"
	"strings"
)

// Variables lists the names of all variables. The first three live in the
// global frame, the last three in the current frame.
var Variables = [...]string{"x", "y", "z", "i", "j", "k"}

// Keywords lists the atoms with a fixed meaning at the top level.
var Keywords = [...]string{Assign, Then, Else, EndCond, Define}

// IsVariable reports whether name is one of the six variables.
func IsVariable(name string) bool {
	switch name {
	case "x", "y", "z", "i", "j", "k":
		return true
	}
	return false
}

// IsKeyword reports whether s is one of Keywords.
func IsKeyword(s string) bool {
	for _, kw := range Keywords {
		if s == kw {
			return true
		}
	}
	return false
}

const numberChars = ".eE0123456789"

// ParseNumber parses a numeric literal: an optional sign followed by digits,
// dots and exponent markers that together form a valid floating-point
// number. It reports false for anything else, including strings like ".."
// made up of the right characters in a wrong order.
func ParseNumber(s string) (float64, bool) {
	body := s
	if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	if body == "" || strings.Trim(body, numberChars) != "" {
		return 0, false
	}
	// ParseFloat also rejects literals that overflow float64. Literals that
	// underflow are read as zero.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseArity parses the arity of a function definition, a decimal integer
// from 0 to 3.
func ParseArity(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 3 {
		return 0, false
	}
	return n, true
}

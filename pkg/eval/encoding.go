package eval

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Encoding determines how the write built-in turns a character code into
// bytes.
type Encoding struct {
	// Name is the canonical WHATWG name of the encoding.
	Name string
	enc  encoding.Encoding
}

// UTF8 is the default encoding.
var UTF8 = &Encoding{"utf-8", unicode.UTF8}

// LookupEncoding finds an encoding by any of its WHATWG names or labels, like
// "utf-8", "latin1" or "ibm866".
func LookupEncoding(name string) (*Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Encoding{canonical, enc}, nil
}

const unrepresentable = "?"

// EncodeCode truncates f toward zero and encodes the resulting code point.
// Codes that are not valid code points, or that the encoding cannot
// represent, become "?".
func (e *Encoding) EncodeCode(f float64) string {
	if math.IsNaN(f) || f < 0 || f > utf8.MaxRune {
		return unrepresentable
	}
	r := rune(math.Trunc(f))
	if !utf8.ValidRune(r) {
		return unrepresentable
	}
	s, err := e.enc.NewEncoder().String(string(r))
	if err != nil {
		return unrepresentable
	}
	return s
}

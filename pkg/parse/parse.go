// Package parse implements the tokenizer of 3code and the cursor that the
// evaluator consumes tokens from.
//
// 3code has no syntax tree. A unit of source is split into tokens up front,
// and the evaluator then interprets the tokens directly, front to back,
// through a Cursor.
package parse

import (
	"strings"
	"unicode"

	"src.3code.sh/pkg/diag"
)

// Source describes a unit of 3code source.
type Source struct {
	Name string
	Code string
}

// Token is an atom of source. Whether a token is a number, a variable, a
// keyword or a function name is decided by the evaluator from the context in
// which the token appears, never by the tokenizer.
type Token struct {
	Text string
	diag.Ranging
	// Source is the unit the token was read from. Tokens of a function body
	// keep pointing to the unit that defined the function.
	Source *Source
}

// String returns the text of the token.
func (t Token) String() string { return t.Text }

// Context returns the diagnostic context of the token.
func (t Token) Context() *diag.Context {
	if t.Source == nil {
		return diag.NewContext("", t.Text, diag.Ranging{From: 0, To: len(t.Text)})
	}
	return diag.NewContext(t.Source.Name, t.Source.Code, t.Ranging)
}

// Special characters. Each forms a token of its own regardless of what
// surrounds it.
const (
	Assign    = "="
	OpenCall  = "["
	CloseCall = "]"
	EndCond   = "?"
)

// Keywords.
const (
	Then   = "then"
	Else   = "else"
	Define = "F"
)

const specialChars = Assign + OpenCall + CloseCall + EndCond

// IsSpecial reports whether r forms a single-character token by itself.
func IsSpecial(r rune) bool {
	return strings.ContainsRune(specialChars, r)
}

// Tokenize splits the code of src into tokens. Whitespace separates tokens
// and is otherwise discarded; each special character is a token by itself.
// There are no comments, escapes or multi-character special tokens, so
// Tokenize never fails.
func Tokenize(src *Source) []Token {
	var tokens []Token
	begin := -1
	flush := func(end int) {
		if begin != -1 {
			tokens = append(tokens, Token{src.Code[begin:end], diag.Ranging{From: begin, To: end}, src})
			begin = -1
		}
	}
	for i, r := range src.Code {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case IsSpecial(r):
			flush(i)
			tokens = append(tokens, Token{string(r), diag.Ranging{From: i, To: i + 1}, src})
		case begin == -1:
			begin = i
		}
	}
	flush(len(src.Code))
	return tokens
}

// Texts returns the text of each token.
func Texts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return texts
}

// Join joins the text of tokens with single spaces. Tokenizing the result
// yields tokens with the same texts.
func Join(tokens []Token) string {
	return strings.Join(Texts(tokens), " ")
}

// Lines tokenizes the code of src and groups the tokens by the line they
// appear on. Lines without any token are left out. Tokens keep their
// positions in the whole of src.
func Lines(src *Source) [][]Token {
	var lines [][]Token
	var line []Token
	lastEnd := 0
	for _, tok := range Tokenize(src) {
		if len(line) > 0 && strings.Contains(src.Code[lastEnd:tok.From], "\n") {
			lines = append(lines, line)
			line = nil
		}
		line = append(line, tok)
		lastEnd = tok.To
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

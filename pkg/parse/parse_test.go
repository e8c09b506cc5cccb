package parse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.3code.sh/pkg/diag"
	. "src.3code.sh/pkg/parse"
	"src.3code.sh/pkg/tt"
)

func tokenTexts(code string) []string {
	return Texts(Tokenize(&Source{Name: "[test]", Code: code}))
}

func TestTokenize(t *testing.T) {
	tt.Test(t, "tokenTexts", tokenTexts, tt.Table{
		tt.Args("").Rets([]string{}),
		tt.Args("   \t ").Rets([]string{}),
		tt.Args("print [ 42 ]").Rets([]string{"print", "[", "42", "]"}),
		// Special characters delimit themselves.
		tt.Args("print[42]").Rets([]string{"print", "[", "42", "]"}),
		tt.Args("1=x").Rets([]string{"1", "=", "x"}),
		tt.Args("a?b").Rets([]string{"a", "?", "b"}),
		tt.Args("[[]]").Rets([]string{"[", "[", "]", "]"}),
		// "=" splits comparison operators as well.
		tt.Args(">= [ 1 2 ]").Rets([]string{">", "=", "[", "1", "2", "]"}),
		tt.Args("then\telse\n?").Rets([]string{"then", "else", "?"}),
		tt.Args("F double 1 + [ i i ] F").Rets(
			[]string{"F", "double", "1", "+", "[", "i", "i", "]", "F"}),
		tt.Args("-1.5e3 好").Rets([]string{"-1.5e3", "好"}),
	})
}

func TestTokenize_Ranges(t *testing.T) {
	src := &Source{Name: "[test]", Code: "nl[ ] 好x"}
	tokens := Tokenize(src)
	var got []diag.Ranging
	for _, tok := range tokens {
		got = append(got, tok.Ranging)
		if tok.Source != src {
			t.Errorf("token %q has source %p, want %p", tok.Text, tok.Source, src)
		}
		if text := src.Code[tok.From:tok.To]; text != tok.Text {
			t.Errorf("token text %q, but range covers %q", tok.Text, text)
		}
	}
	want := []diag.Ranging{{From: 0, To: 2}, {From: 2, To: 3}, {From: 4, To: 5}, {From: 6, To: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranges (-want +got):\n%s", diff)
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	for _, code := range []string{
		"print[42]",
		"F f 2 +[i j]F f[1 2]",
		"5=x?then else",
		"  = [ 1 2 ]  ",
	} {
		first := Tokenize(&Source{Code: code})
		second := Tokenize(&Source{Code: Join(first)})
		if diff := cmp.Diff(Texts(first), Texts(second)); diff != "" {
			t.Errorf("re-tokenizing %q (-first +second):\n%s", code, diff)
		}
	}
}

func TestToken_Context(t *testing.T) {
	src := &Source{Name: "a.3c", Code: "1 = q"}
	tok := Tokenize(src)[2]
	if got, want := tok.Context().Describe(), "a.3c:1:5"; got != want {
		t.Errorf("Describe() -> %q, want %q", got, want)
	}
}

func lineTexts(code string) [][]string {
	var texts [][]string
	for _, line := range Lines(&Source{Name: "[test]", Code: code}) {
		texts = append(texts, Texts(line))
	}
	return texts
}

func TestLines(t *testing.T) {
	tt.Test(t, "lineTexts", lineTexts, tt.Table{
		tt.Args("").Rets([][]string(nil)),
		tt.Args("1 = x").Rets([][]string{{"1", "=", "x"}}),
		tt.Args("1 = x\nprintln [ x ]\n").Rets(
			[][]string{{"1", "=", "x"}, {"println", "[", "x", "]"}}),
		// Blank lines are skipped.
		tt.Args("\n\n  \nnl [ ]\r\n\r\n?").Rets([][]string{{"nl", "[", "]"}, {"?"}}),
		tt.Args("a\nb\n\nc").Rets([][]string{{"a"}, {"b"}, {"c"}}),
	})
}

func TestLines_KeepsPositions(t *testing.T) {
	lines := Lines(&Source{Name: "[test]", Code: "1\n  x"})
	if got := lines[1][0].Ranging; got != (diag.Ranging{From: 4, To: 5}) {
		t.Errorf("got range %v, want 4-5", got)
	}
}

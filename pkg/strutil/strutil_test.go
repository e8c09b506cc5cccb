package strutil

import (
	"testing"

	"src.3code.sh/pkg/tt"
)

func TestChopLineEnding(t *testing.T) {
	tt.Test(t, "ChopLineEnding", ChopLineEnding, tt.Table{
		tt.Args("").Rets(""),
		tt.Args("print [ 1 ]").Rets("print [ 1 ]"),
		tt.Args("print [ 1 ]\n").Rets("print [ 1 ]"),
		tt.Args("print [ 1 ]\r\n").Rets("print [ 1 ]"),
		// Only one line ending is removed.
		tt.Args("nl [ ]\n\n").Rets("nl [ ]\n"),
	})
}

func TestChopTerminator(t *testing.T) {
	tt.Test(t, "ChopTerminator", ChopTerminator, tt.Table{
		tt.Args("a\x00", byte(0)).Rets("a"),
		tt.Args("a", byte(0)).Rets("a"),
		tt.Args("", byte(0)).Rets(""),
	})
}

func TestTitle(t *testing.T) {
	tt.Test(t, "Title", Title, tt.Table{
		tt.Args("eval error").Rets("Eval error"),
		tt.Args("").Rets(""),
		tt.Args("ǆ").Rets("ǅ"),
	})
}

func TestFindFirstEOL(t *testing.T) {
	tt.Test(t, "FindFirstEOL", FindFirstEOL, tt.Table{
		tt.Args("0").Rets(1),
		tt.Args("01\n").Rets(2),
		tt.Args("01\n34").Rets(2),
	})
}

func TestFindLastSOL(t *testing.T) {
	tt.Test(t, "FindLastSOL", FindLastSOL, tt.Table{
		tt.Args("0").Rets(0),
		tt.Args("0\n").Rets(2),
		tt.Args("01\n34\n67").Rets(6),
	})
}

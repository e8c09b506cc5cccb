package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	lsp "github.com/sourcegraph/go-lsp"
	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/tt"
)

func TestCompleteAt(t *testing.T) {
	for _, test := range []struct {
		name      string
		content   string
		dot       int
		wantFrom  int
		wantItems []completionItem
	}{
		{
			name: "builtin", content: "pr", dot: 2, wantFrom: 0,
			wantItems: []completionItem{
				{"print", lsp.CIKFunction, "builtin taking 1 argument"},
				{"println", lsp.CIKFunction, "builtin taking 1 argument"},
			},
		},
		{
			name: "variable after special character", content: "print [x", dot: 8, wantFrom: 7,
			wantItems: []completionItem{{"x", lsp.CIKVariable, "global variable"}},
		},
		{
			name: "local variable", content: "F f 1 j", dot: 7, wantFrom: 6,
			wantItems: []completionItem{{"j", lsp.CIKVariable, "variable of the current function call"}},
		},
		{
			name: "keyword", content: "x th", dot: 4, wantFrom: 2,
			wantItems: []completionItem{{"then", lsp.CIKKeyword, ""}},
		},
		{
			name: "defined function", content: "F dbl 1 + [ i i ] F\nF dbl 2 i F\nd", dot: 33, wantFrom: 32,
			wantItems: []completionItem{{"dbl", lsp.CIKFunction, "defined taking 1 or 2 arguments"}},
		},
		{
			name: "middle of a word", content: "nl [ ]", dot: 1, wantFrom: 0,
			wantItems: []completionItem{{"nl", lsp.CIKFunction, "builtin taking 0 arguments"}},
		},
		{
			name: "no match", content: "zz", dot: 2, wantFrom: 0,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			from, items := completeAt(test.content, test.dot)
			if from != test.wantFrom {
				t.Errorf("got from %d, want %d", from, test.wantFrom)
			}
			if diff := cmp.Diff(test.wantItems, items, cmp.AllowUnexported(completionItem{})); diff != "" {
				t.Errorf("items (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompleteAt_EmptyPrefix(t *testing.T) {
	_, items := completeAt("1 = ", 4)
	// 6 variables, 5 keywords and 13 distinct built-in names.
	if len(items) != 24 {
		t.Errorf("got %d items, want 24", len(items))
	}
}

func TestHoverAt(t *testing.T) {
	for _, test := range []struct {
		content   string
		idx       int
		wantText  string
		wantRange diag.Ranging
		wantOK    bool
	}{
		{"print [ x ]", 0, "print: builtin taking 1 argument", diag.Ranging{From: 0, To: 5}, true},
		{"print [ x ]", 4, "print: builtin taking 1 argument", diag.Ranging{From: 0, To: 5}, true},
		{"print [ x ]", 8, "x: global variable", diag.Ranging{From: 8, To: 9}, true},
		{"print [ x ]", 5, "", diag.Ranging{}, false},
		{"print [ x ]", 11, "", diag.Ranging{}, false},
		{"1 = k", 4, "k: variable of the current function call", diag.Ranging{From: 4, To: 5}, true},
		{"x then 1 ?", 2, "then: runs what follows if the current value is not 0, or skips to the next else or ?",
			diag.Ranging{From: 2, To: 6}, true},
		{"F f 0 1 F F f 2 + [ i j ] F f [ ]", 28, "f: defined taking 0 or 2 arguments",
			diag.Ranging{From: 28, To: 29}, true},
		{"F print 2 + [ i j ] F", 2, "print: builtin taking 1 argument; defined taking 2 arguments",
			diag.Ranging{From: 2, To: 7}, true},
		{"foo [ ]", 0, "", diag.Ranging{}, false},
		{"42", 0, "", diag.Ranging{}, false},
		{"x then 1 else 2 ?", 9, "else: skips to the next ?", diag.Ranging{From: 9, To: 13}, true},
		{"x then 1 else 2 ?", 16, "?: ends a conditional", diag.Ranging{From: 16, To: 17}, true},
		{"F one 0 1 F", 10, "F name arity body F: defines a function", diag.Ranging{From: 10, To: 11}, true},
	} {
		text, r, ok := hoverAt(test.content, test.idx)
		if text != test.wantText || r != test.wantRange || ok != test.wantOK {
			t.Errorf("hoverAt(%q, %d) -> (%q, %v, %v), want (%q, %v, %v)",
				test.content, test.idx, text, r, ok, test.wantText, test.wantRange, test.wantOK)
		}
	}
}

func TestDescribeArities(t *testing.T) {
	tt.Test(t, "describeArities", describeArities, tt.Table{
		tt.Args([]int{1}).Rets("1 argument"),
		tt.Args([]int{0}).Rets("0 arguments"),
		tt.Args([]int{2, 0, 2}).Rets("0 or 2 arguments"),
		tt.Args([]int{3, 2, 1}).Rets("1 or 2 or 3 arguments"),
	})
}

package diag

import "testing"

var contextTests = []struct {
	Name    string
	Context *Context
	Indent  string

	WantShow        string
	WantShowCompact string
	WantUnderline   string
}{
	{
		Name:    "culprit in middle of line",
		Context: contextOf("[test]", "+ [ 1 foo ]", "foo"),
		Indent:  "_",

		WantShow:        "[test]:1:7\n_+ [ 1 <foo> ]",
		WantShowCompact: "_[test]:1:7: + [ 1 <foo> ]",
		WantUnderline:   "      ^^^",
	},
	{
		Name:    "culprit on second line",
		Context: contextOf("[test]", "1 = x\nbad = y", "bad"),

		WantShow:        "[test]:2:1\n<bad> = y",
		WantShowCompact: "[test]:2:1: <bad> = y",
		WantUnderline:   "^^^",
	},
	{
		Name:    "empty culprit",
		Context: NewContext("[test]", "+ [", Ranging{3, 3}),

		WantShow:        "[test]:1:4\n+ [<^>",
		WantShowCompact: "[test]:1:4: + [<^>",
		WantUnderline:   "   ^",
	},
	{
		Name:            "unknown culprit range",
		Context:         NewContext("[test]", "nl", Ranging{-1, -1}),
		WantShow:        "[test], unknown position",
		WantShowCompact: "[test], unknown position",
	},
	{
		Name:            "invalid culprit range",
		Context:         NewContext("[test]", "nl", Ranging{2, 1}),
		WantShow:        "[test], invalid position 2-1",
		WantShowCompact: "[test], invalid position 2-1",
	},
}

func TestContext(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextTests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Context.Show(test.Indent); got != test.WantShow {
				t.Errorf("Show() -> %q, want %q", got, test.WantShow)
			}
			if got := test.Context.ShowCompact(test.Indent); got != test.WantShowCompact {
				t.Errorf("ShowCompact() -> %q, want %q", got, test.WantShowCompact)
			}
			if got := test.Context.Underline(); got != test.WantUnderline {
				t.Errorf("Underline() -> %q, want %q", got, test.WantUnderline)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	for s, want := range map[string]int{"": 0, "abc": 3, "好": 2, "a好b": 4} {
		if got := Width(s); got != want {
			t.Errorf("Width(%q) = %d, want %d", s, got, want)
		}
	}
}

package lsp

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	lsp "github.com/sourcegraph/go-lsp"
	"src.3code.sh/pkg/diag"
	"src.3code.sh/pkg/eval"
	"src.3code.sh/pkg/parse"
)

type completionItem struct {
	text   string
	kind   lsp.CompletionItemKind
	detail string
}

// Returns the start of the word that ends at dot, and the items that complete
// it. A word can be completed to a variable, a keyword, a built-in function or
// a function defined anywhere in content.
func completeAt(content string, dot int) (int, []completionItem) {
	from := dot
	for from > 0 {
		r, size := utf8.DecodeLastRuneInString(content[:from])
		if unicode.IsSpace(r) || parse.IsSpecial(r) {
			break
		}
		from -= size
	}
	prefix := content[from:dot]

	var items []completionItem
	add := func(item completionItem) {
		if strings.HasPrefix(item.text, prefix) {
			items = append(items, item)
		}
	}
	for _, v := range parse.Variables {
		add(completionItem{v, lsp.CIKVariable, describeVariable(v)})
	}
	for _, kw := range parse.Keywords {
		add(completionItem{kw, lsp.CIKKeyword, ""})
	}
	fns := functions(content)
	for _, name := range fns.names() {
		add(completionItem{name, lsp.CIKFunction, fns[name].describe()})
	}
	return from, items
}

// Returns a description of the token at idx.
func hoverAt(content string, idx int) (string, diag.Ranging, bool) {
	for _, tok := range parse.Tokenize(&parse.Source{Code: content}) {
		if idx < tok.From || idx >= tok.To {
			continue
		}
		var text string
		switch {
		case parse.IsVariable(tok.Text):
			text = tok.Text + ": " + describeVariable(tok.Text)
		case parse.IsKeyword(tok.Text):
			text = keywordDocs[tok.Text]
		default:
			if fn, ok := functions(content)[tok.Text]; ok {
				text = tok.Text + ": " + fn.describe()
			} else {
				return "", diag.Ranging{}, false
			}
		}
		return text, tok.Ranging, true
	}
	return "", diag.Ranging{}, false
}

var keywordDocs = map[string]string{
	parse.Assign:  "=: assigns the current value to the variable that follows; followed by [, compares two numbers",
	parse.Define:  "F name arity body F: defines a function",
	parse.Then:    "then: runs what follows if the current value is not 0, or skips to the next else or ?",
	parse.Else:    "else: skips to the next ?",
	parse.EndCond: "?: ends a conditional",
}

func describeVariable(name string) string {
	switch name {
	case "x", "y", "z":
		return "global variable"
	default:
		return "variable of the current function call"
	}
}

type arities struct{ builtin, user []int }

type functionSet map[string]*arities

// Finds the built-in functions and the functions defined in content.
func functions(content string) functionSet {
	fns := functionSet{}
	get := func(name string) *arities {
		if fns[name] == nil {
			fns[name] = &arities{}
		}
		return fns[name]
	}
	for _, key := range eval.Builtins() {
		a := get(key.Name)
		a.builtin = append(a.builtin, key.Arity)
	}
	for _, def := range eval.CheckLines(&parse.Source{Code: content}).Defs {
		a := get(def.Name)
		a.user = append(a.user, def.Arity)
	}
	return fns
}

func (fns functionSet) names() []string {
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *arities) describe() string {
	var parts []string
	if len(a.builtin) > 0 {
		parts = append(parts, "builtin taking "+describeArities(a.builtin))
	}
	if len(a.user) > 0 {
		parts = append(parts, "defined taking "+describeArities(a.user))
	}
	return strings.Join(parts, "; ")
}

func describeArities(arities []int) string {
	sorted := append([]int(nil), arities...)
	sort.Ints(sorted)
	// Drop duplicates from redefinitions.
	var uniq []int
	for _, n := range sorted {
		if len(uniq) == 0 || n != uniq[len(uniq)-1] {
			uniq = append(uniq, n)
		}
	}
	strs := make([]string, len(uniq))
	for i, n := range uniq {
		strs[i] = fmt.Sprint(n)
	}
	noun := "arguments"
	if len(uniq) == 1 && uniq[0] == 1 {
		noun = "argument"
	}
	return strings.Join(strs, " or ") + " " + noun
}

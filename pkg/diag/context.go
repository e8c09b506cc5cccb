package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
	"src.3code.sh/pkg/strutil"
)

// Context is a range of text in a source unit. It is attached to errors that
// can be associated with a part of the source, like an unknown token.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Position returns the 1-based line and column of the start of the range.
// Columns count runes, not bytes.
func (c *Context) Position() (line, col int) {
	if c.From < 0 || c.From > len(c.Source) {
		return 0, 0
	}
	before := c.Source[:c.From]
	line = strings.Count(before, "\n") + 1
	col = utf8.RuneCountInString(before[strutil.FindLastSOL(before):]) + 1
	return line, col
}

// Describe returns "name:line:col", or "name" if the position is unknown.
func (c *Context) Describe() string {
	if err := c.checkPosition(); err != nil {
		return c.Name
	}
	line, col := c.Position()
	return fmt.Sprintf("%s:%d:%d", c.Name, line, col)
}

// Show shows the context as a description of the position, followed by a
// line break and the line containing the culprit, indented with sourceIndent.
func (c *Context) Show(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Describe() + "\n" + sourceIndent + c.relevantSource()
}

// ShowCompact is like Show, but puts the description and the source on the
// same line.
func (c *Context) ShowCompact(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return sourceIndent + c.Describe() + ": " + c.relevantSource()
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

// Culprit is only ever one token, so it never spans lines. Any trailing
// newline is stripped anyway.
func (c *Context) relevantSource() string {
	head := c.Source[strutil.FindLastSOL(c.Source[:c.From]):c.From]
	culprit := strings.TrimSuffix(c.Source[c.From:c.To], "\n")
	tail := c.Source[c.To:][:strutil.FindFirstEOL(c.Source[c.To:])]
	if culprit == "" {
		culprit = culpritPlaceHolder
	}
	return head + culpritStart + culprit + culpritEnd + tail
}

// Underline returns a line of carets under the culprit, suitable for showing
// below the output of relevantSource on terminals that don't support styles.
func (c *Context) Underline() string {
	if c.checkPosition() != nil {
		return ""
	}
	head := c.Source[strutil.FindLastSOL(c.Source[:c.From]):c.From]
	n := Width(c.Source[c.From:c.To])
	if n == 0 {
		n = 1
	}
	return strings.Repeat(" ", Width(head)) + strings.Repeat("^", n)
}

// Width returns the number of terminal columns s occupies, counting East
// Asian wide and fullwidth characters as two columns.
func Width(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

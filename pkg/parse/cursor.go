package parse

// Cursor is a consumable view of a token sequence. The evaluator drives
// itself by inspecting the current token and advancing past it; no operation
// panics on an exhausted cursor.
type Cursor struct {
	tokens []Token
}

// NewCursor returns a Cursor over a private copy of tokens, so that
// consuming the cursor never affects the slice it was created from.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{append([]Token(nil), tokens...)}
}

// Empty reports whether all tokens have been consumed.
func (c *Cursor) Empty() bool { return len(c.tokens) == 0 }

// Len returns the number of remaining tokens.
func (c *Cursor) Len() int { return len(c.tokens) }

// Current returns the current token. The second return value is false if the
// cursor is empty.
func (c *Cursor) Current() (Token, bool) {
	if c.Empty() {
		return Token{}, false
	}
	return c.tokens[0], true
}

// Is reports whether the current token has the given text.
func (c *Cursor) Is(text string) bool {
	t, ok := c.Current()
	return ok && t.Text == text
}

// Advance drops the current token, if any, and reports whether any tokens
// remain.
func (c *Cursor) Advance() bool {
	if !c.Empty() {
		c.tokens = c.tokens[1:]
	}
	return !c.Empty()
}

// PeekSecond reports whether the token after the current one has the given
// text. It is false when fewer than two tokens remain.
func (c *Cursor) PeekSecond(text string) bool {
	return len(c.tokens) >= 2 && c.tokens[1].Text == text
}

// Append adds tokens to the end.
func (c *Cursor) Append(tokens ...Token) {
	c.tokens = append(c.tokens, tokens...)
}

// Rest returns a copy of the remaining tokens.
func (c *Cursor) Rest() []Token {
	return append([]Token(nil), c.tokens...)
}

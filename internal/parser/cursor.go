package parser

import "github.com/stockerssld/myst/internal/lexer"

// Cursor is an immutable navigation handle over a lexer's token stream:
// every operation returns a new Cursor rather than mutating in place,
// so speculative parsing (pattern-vs-expression disambiguation) can
// backtrack to a Mark with no special-case undo logic.
type Cursor struct {
	lex     *lexer.Lexer
	tokens  []lexer.Token
	current lexer.Token
	index   int
}

// NewCursor creates a Cursor positioned at the first token of l.
func NewCursor(l *lexer.Lexer) *Cursor {
	first := l.Next()
	toks := make([]lexer.Token, 1, 32)
	toks[0] = first
	return &Cursor{lex: l, tokens: toks, current: first, index: 0}
}

// Current returns the token at the cursor's position.
func (c *Cursor) Current() lexer.Token { return c.current }

// Peek returns the token n positions ahead (Peek(0) == Current()),
// buffering from the lexer as needed.
func (c *Cursor) Peek(n int) lexer.Token {
	if n < 0 {
		return c.current
	}
	target := c.index + n
	for target >= len(c.tokens) && c.tokens[len(c.tokens)-1].Type != lexer.EOF {
		c.tokens = append(c.tokens, c.lex.Next())
	}
	if target < len(c.tokens) {
		return c.tokens[target]
	}
	return c.tokens[len(c.tokens)-1]
}

// Advance returns a new Cursor at the next token. Advancing past EOF
// is a no-op: EOF is sticky so callers can loop on !cursor.Is(EOF)
// without special-casing the boundary.
func (c *Cursor) Advance() *Cursor {
	if c.current.Type == lexer.EOF {
		return c
	}
	next := c.Peek(1)
	return &Cursor{lex: c.lex, tokens: c.tokens, current: next, index: c.index + 1}
}

// Is reports whether the current token has type t.
func (c *Cursor) Is(t lexer.TokenType) bool { return c.current.Type == t }

// PeekIs reports whether the token n positions ahead has type t.
func (c *Cursor) PeekIs(n int, t lexer.TokenType) bool { return c.Peek(n).Type == t }

// Mark saves the cursor's position for later backtracking via ResetTo.
type Mark struct{ index int }

func (c *Cursor) Mark() Mark { return Mark{index: c.index} }

// ResetTo returns a Cursor backtracked to a previously saved Mark.
func (c *Cursor) ResetTo(m Mark) *Cursor {
	return &Cursor{lex: c.lex, tokens: c.tokens, current: c.tokens[m.index], index: m.index}
}

package parser

import (
	"fmt"

	"github.com/stockerssld/myst/internal/lexer"
)

// SyntaxError is a structured parse error carrying source position, an
// error code for programmatic matching, and a human message.
type SyntaxError struct {
	Code    string
	Message string
	Pos     lexer.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Pos, e.Message)
}

func newSyntaxError(pos lexer.Position, code, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

const (
	ErrUnexpectedToken   = "E_UNEXPECTED_TOKEN"
	ErrNoPrefixParse     = "E_NO_PREFIX_PARSE"
	ErrMissingEnd        = "E_MISSING_END"
	ErrMissingRParen     = "E_MISSING_RPAREN"
	ErrMissingRBracket   = "E_MISSING_RBRACKET"
	ErrMissingRBrace     = "E_MISSING_RBRACE"
	ErrInvalidPattern    = "E_INVALID_PATTERN"
	ErrInvalidAssignment = "E_INVALID_ASSIGNMENT"
)

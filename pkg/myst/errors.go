package myst

import (
	"strings"

	"github.com/stockerssld/myst/internal/parser"
)

// ParseError wraps every syntax error a Parse/Compile call accumulated,
// mirroring the parser's own multi-error-per-pass reporting rather than
// surfacing only the first mistake found.
type ParseError struct {
	Errors []*parser.SyntaxError
}

func (e *ParseError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, se := range e.Errors {
		parts[i] = se.Error()
	}
	return strings.Join(parts, "\n")
}

// RuntimeError wraps the formatted output of a captured runtime error
// (spec §6.3's capture_errors mode), so a caller that wants the
// original text without re-reading the error sink can get it from the
// returned error directly.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return strings.TrimRight(e.Message, "\n") }

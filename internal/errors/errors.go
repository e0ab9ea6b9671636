// Package errors formats interpreter errors with source context,
// line/column information, and a caret pointing at the offending
// location, the way the teacher's compiler-error formatter does.
package errors

import (
	"fmt"
	"strings"

	"github.com/stockerssld/myst/internal/ast"
)

// Kind is one of the eight error kinds spec §7 names, plus
// AssertionFailure for the assert_equal built-in. The names are
// semantic, not Go type identifiers — every kind is represented by the
// same EvaluatorError struct, tagged by Kind.
type Kind int

const (
	MatchError Kind = iota
	UndefinedVariable
	UnsupportedOperation
	DivisionByZero
	CallTargetError
	ArityError
	ScopeUnderflow
	UnsupportedNode
	AssertionFailure
)

var kindNames = map[Kind]string{
	MatchError:           "MatchError",
	UndefinedVariable:    "UndefinedVariable",
	UnsupportedOperation: "UnsupportedOperation",
	DivisionByZero:       "DivisionByZero",
	CallTargetError:      "CallTargetError",
	ArityError:           "ArityError",
	ScopeUnderflow:       "ScopeUnderflow",
	UnsupportedNode:      "UnsupportedNode",
	AssertionFailure:     "AssertionFailure",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UnknownError"
}

// EvaluatorError is a single runtime error with its kind, source
// location, and message, formatted the way the teacher's
// CompilerError is: a header line, the offending source line, and a
// caret.
type EvaluatorError struct {
	Kind     Kind
	Location ast.Location
	Message  string
	Source   string // full source text, for rendering the offending line
}

// New constructs an EvaluatorError.
func New(kind Kind, loc ast.Location, source, format string, args ...any) *EvaluatorError {
	return &EvaluatorError{Kind: kind, Location: loc, Message: fmt.Sprintf(format, args...), Source: source}
}

// Error implements the error interface with plain (uncolored) output.
func (e *EvaluatorError) Error() string {
	return e.Format(false)
}

// Format renders the error with source context and a caret under the
// offending column. When color is true, ANSI codes highlight the
// caret, matching the teacher's terminal-aware formatter (gated by
// go-isatty at the cmd/myst call site, not here).
func (e *EvaluatorError) Format(color bool) string {
	var sb strings.Builder

	if e.Location.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, e.Location.File, e.Location.Line, e.Location.Column)
	} else {
		fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Kind, e.Location.Line, e.Location.Column)
	}

	if line := sourceLine(e.Source, e.Location.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Location.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Location.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FormatAll renders a batch of errors, separated by blank lines, the
// way the teacher's parser-error reporter does for multi-error runs.
func FormatAll(errs []*EvaluatorError, color bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(color)
	}
	return strings.Join(parts, "\n\n")
}

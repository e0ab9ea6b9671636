package errors

import (
	"strings"
	"testing"

	"github.com/stockerssld/myst/internal/ast"
)

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	src := "a =: 1\nb = c + 1"
	err := New(UndefinedVariable, ast.Location{File: "prog.myst", Line: 2, Column: 5}, src, "undefined variable %q", "c")

	out := err.Format(false)
	if !strings.Contains(out, "UndefinedVariable in prog.myst:2:5") {
		t.Fatalf("missing header: %s", out)
	}
	if !strings.Contains(out, "b = c + 1") {
		t.Fatalf("missing source line: %s", out)
	}
	// "   2 | " is 7 columns wide, so column 5 puts the caret after 11 spaces.
	if !strings.Contains(out, "\n"+strings.Repeat(" ", 11)+"^\n") {
		t.Fatalf("missing caret under column 5: %s", out)
	}
	if !strings.Contains(out, `undefined variable "c"`) {
		t.Fatalf("missing message: %s", out)
	}
}

func TestKindStringMatchesSpecNames(t *testing.T) {
	cases := map[Kind]string{
		MatchError:           "MatchError",
		UndefinedVariable:    "UndefinedVariable",
		UnsupportedOperation: "UnsupportedOperation",
		DivisionByZero:       "DivisionByZero",
		CallTargetError:      "CallTargetError",
		ArityError:           "ArityError",
		ScopeUnderflow:       "ScopeUnderflow",
		UnsupportedNode:      "UnsupportedNode",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("kind %d: got %q, want %q", k, got, want)
		}
	}
}

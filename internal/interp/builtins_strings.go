package interp

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/value"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
	titleCaser = cases.Title(language.Und)
)

func stringArg(it *Interpreter, call *ast.FunctionCall, args []value.Value, name string) (string, error) {
	if err := arity(it, call, args, 1); err != nil {
		return "", err
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return "", it.errf(call, errors.UnsupportedOperation, "%s expects a String, got %s", name, args[0].TypeName())
	}
	return string(s), nil
}

// builtinUpcase, builtinDowncase, builtinTitle implement Unicode-aware
// case conversion (golang.org/x/text/cases) rather than the ASCII-only
// strings.ToUpper family, since the language corpus this module shares
// a stack with treats non-ASCII identifiers and literals as ordinary
// input.
func builtinUpcase(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	s, err := stringArg(it, call, args, "upcase")
	if err != nil {
		return nil, err
	}
	return value.Str(upperCaser.String(s)), nil
}

func builtinDowncase(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	s, err := stringArg(it, call, args, "downcase")
	if err != nil {
		return nil, err
	}
	return value.Str(lowerCaser.String(s)), nil
}

func builtinTitle(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	s, err := stringArg(it, call, args, "title")
	if err != nil {
		return nil, err
	}
	return value.Str(titleCaser.String(s)), nil
}

// builtinDisplayWidth implements display_width(string) via
// golang.org/x/text/width, counting East-Asian wide/fullwidth runes as
// two display columns, for scripts that format fixed-width tabular
// output.
func builtinDisplayWidth(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	s, err := stringArg(it, call, args, "display_width")
	if err != nil {
		return nil, err
	}
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return value.Int(n), nil
}

package interp

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/value"
)

// builtinSort implements the sort(list) built-in: a List of Strings is
// sorted with natural ordering (so "item2" precedes "item10"); a List
// of Integers or Floats is sorted numerically; any other element kind
// is an error. Sorting never mutates the argument — it returns a new
// List, consistent with the value-vs-reference rules of spec §8.1
// (the caller still owns its original List).
func builtinSort(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "sort expects a List, got %s", args[0].TypeName())
	}
	if len(lst.Elements) == 0 {
		return value.NewList(nil), nil
	}

	out := append([]value.Value(nil), lst.Elements...)

	switch lst.Elements[0].(type) {
	case value.Str:
		for _, e := range out {
			if _, ok := e.(value.Str); !ok {
				return nil, it.errf(call, errors.UnsupportedOperation, "sort cannot mix String with %s", e.TypeName())
			}
		}
		sort.Slice(out, func(i, j int) bool {
			return natural.Less(string(out[i].(value.Str)), string(out[j].(value.Str)))
		})
	case value.Int, value.Float:
		for _, e := range out {
			if !value.IsNumeric(e) {
				return nil, it.errf(call, errors.UnsupportedOperation, "sort cannot mix numbers with %s", e.TypeName())
			}
		}
		sort.Slice(out, func(i, j int) bool {
			cmp, err := value.Compare(out[i], out[j])
			if err != nil {
				return false
			}
			return cmp < 0
		})
	default:
		return nil, it.errf(call, errors.UnsupportedOperation, "sort does not support elements of type %s", lst.Elements[0].TypeName())
	}

	return value.NewList(out), nil
}

package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/value"
)

// matchList implements spec §4.4's list-pattern rules: without a
// splat, arity must match exactly; with a splat, fixed elements match
// by position from both ends and the splat binds the middle slice
// (possibly empty) as a new List — never flattened, even when it
// captures exactly one element that is itself a List.
func (it *Interpreter) matchList(pat *ast.ListPattern, v value.Value, bindings *[]binding) error {
	lst, ok := v.(*value.List)
	if !ok {
		return it.matchErrorf(pat, "expected List, got %s", v.TypeName())
	}

	if pat.SplatIndex < 0 {
		if len(pat.Elements) != len(lst.Elements) {
			return it.matchErrorf(pat, "expected %d element(s), got %d", len(pat.Elements), len(lst.Elements))
		}
		for i, sub := range pat.Elements {
			if err := it.match(sub, lst.Elements[i], bindings); err != nil {
				return err
			}
		}
		return nil
	}

	before := pat.SplatIndex
	after := len(pat.Elements) - pat.SplatIndex - 1
	if len(lst.Elements) < before+after {
		return it.matchErrorf(pat, "expected at least %d element(s), got %d", before+after, len(lst.Elements))
	}

	for i := 0; i < before; i++ {
		if err := it.match(pat.Elements[i], lst.Elements[i], bindings); err != nil {
			return err
		}
	}
	for i := 0; i < after; i++ {
		valueIdx := len(lst.Elements) - after + i
		if err := it.match(pat.Elements[pat.SplatIndex+1+i], lst.Elements[valueIdx], bindings); err != nil {
			return err
		}
	}

	middle := lst.Elements[before : len(lst.Elements)-after]
	captured := append([]value.Value(nil), middle...)
	splat := pat.Elements[pat.SplatIndex].(*ast.SplatPattern)
	*bindings = append(*bindings, binding{name: splat.Name, value: value.NewList(captured)})
	return nil
}

package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/value"
)

// visitListLiteral evaluates children left to right, then collects the
// top N results (in order) into a List (spec §4.3).
func (it *Interpreter) visitListLiteral(n *ast.ListLiteral) error {
	elems := make([]value.Value, len(n.Elements))
	for i, e := range n.Elements {
		v, err := it.Eval(e)
		if err != nil {
			return err
		}
		elems[i] = v
	}
	it.ops.push(value.NewList(elems))
	return nil
}

// visitMapLiteral evaluates values left to right with static keys
// (spec §4.3).
func (it *Interpreter) visitMapLiteral(n *ast.MapLiteral) error {
	m := value.NewMap()
	for _, entry := range n.Entries {
		v, err := it.Eval(entry.Value)
		if err != nil {
			return err
		}
		m.Set(entry.Key, v)
	}
	it.ops.push(m)
	return nil
}

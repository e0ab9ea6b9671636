package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/value"
)

// visitBlock implements spec §4.3/§3.4: evaluate children in order,
// discarding every result but the last.
func (it *Interpreter) visitBlock(n *ast.Block) error {
	return it.evalSequence(n.Children)
}

// visitExpressionList is evaluated identically to Block; the two node
// kinds exist because the parser's grammar distinguishes a program
// body from a `def ... end` function body, not because their stack effect
// differs (spec §6.1 lists both; spec §4.3 defines one rule for both).
func (it *Interpreter) visitExpressionList(n *ast.ExpressionList) error {
	return it.evalSequence(n.Children)
}

func (it *Interpreter) evalSequence(children []ast.Expression) error {
	if len(children) == 0 {
		it.ops.push(value.NilValue)
		return nil
	}
	for i, c := range children {
		v, err := it.Eval(c)
		if err != nil {
			return err
		}
		if i == len(children)-1 {
			it.ops.push(v)
		}
	}
	return nil
}

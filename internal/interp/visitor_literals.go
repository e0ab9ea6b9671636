package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/value"
)

func (it *Interpreter) visitNilLiteral(*ast.NilLiteral) error {
	it.ops.push(value.NilValue)
	return nil
}

func (it *Interpreter) visitBooleanLiteral(n *ast.BooleanLiteral) error {
	it.ops.push(value.Bool(n.Value))
	return nil
}

func (it *Interpreter) visitIntegerLiteral(n *ast.IntegerLiteral) error {
	it.ops.push(value.Int(n.Value))
	return nil
}

func (it *Interpreter) visitFloatLiteral(n *ast.FloatLiteral) error {
	it.ops.push(value.Float(n.Value))
	return nil
}

func (it *Interpreter) visitStringLiteral(n *ast.StringLiteral) error {
	it.ops.push(value.Str(n.Value))
	return nil
}

func (it *Interpreter) visitSymbolLiteral(n *ast.SymbolLiteral) error {
	it.ops.push(value.Symbol(n.Value))
	return nil
}

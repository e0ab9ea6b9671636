package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/value"
)

// visitLogicalExpression implements && and ||. Both operands are
// strict per spec.md, but this interpreter short-circuits (spec §9
// open question, decided in SPEC_FULL.md): the right operand is only
// evaluated when its result can change the outcome.
func (it *Interpreter) visitLogicalExpression(n *ast.LogicalExpression) error {
	left, err := it.Eval(n.Left)
	if err != nil {
		return err
	}

	if it.ShortCircuit {
		if n.Op == ast.LogicalAnd && !value.Truthy(left) {
			it.ops.push(left)
			return nil
		}
		if n.Op == ast.LogicalOr && value.Truthy(left) {
			it.ops.push(left)
			return nil
		}
		right, err := it.Eval(n.Right)
		if err != nil {
			return err
		}
		it.ops.push(right)
		return nil
	}

	right, err := it.Eval(n.Right)
	if err != nil {
		return err
	}
	switch n.Op {
	case ast.LogicalAnd:
		if !value.Truthy(left) {
			it.ops.push(left)
		} else {
			it.ops.push(right)
		}
	default:
		if value.Truthy(left) {
			it.ops.push(left)
		} else {
			it.ops.push(right)
		}
	}
	return nil
}

func (it *Interpreter) visitEqualityExpression(n *ast.EqualityExpression) error {
	left, err := it.Eval(n.Left)
	if err != nil {
		return err
	}
	right, err := it.Eval(n.Right)
	if err != nil {
		return err
	}
	eq := value.Equal(left, right)
	if n.Op == ast.EqNotEqual {
		eq = !eq
	}
	it.ops.push(value.Bool(eq))
	return nil
}

func (it *Interpreter) visitRelationalExpression(n *ast.RelationalExpression) error {
	left, err := it.Eval(n.Left)
	if err != nil {
		return err
	}
	right, err := it.Eval(n.Right)
	if err != nil {
		return err
	}
	cmp, cerr := value.Compare(left, right)
	if cerr != nil {
		return it.errf(n, errors.UnsupportedOperation, "%s", cerr)
	}
	var result bool
	switch n.Op {
	case ast.RelLess:
		result = cmp < 0
	case ast.RelLessEqual:
		result = cmp <= 0
	case ast.RelGreater:
		result = cmp > 0
	case ast.RelGreaterEqual:
		result = cmp >= 0
	}
	it.ops.push(value.Bool(result))
	return nil
}

func (it *Interpreter) visitBinaryExpression(n *ast.BinaryExpression) error {
	left, err := it.Eval(n.Left)
	if err != nil {
		return err
	}
	right, err := it.Eval(n.Right)
	if err != nil {
		return err
	}

	var result value.Value
	var opErr error
	switch n.Op {
	case ast.BinAdd:
		result, opErr = value.Add(left, right)
	case ast.BinSub:
		result, opErr = value.Sub(left, right)
	case ast.BinMul:
		result, opErr = value.Mul(left, right)
	case ast.BinDiv:
		result, opErr = value.Div(left, right)
	case ast.BinMod:
		result, opErr = value.Mod(left, right)
	}
	if opErr == value.ErrDivisionByZero {
		return it.errf(n, errors.DivisionByZero, "division by zero")
	}
	if opErr != nil {
		return it.errf(n, errors.UnsupportedOperation, "%s", opErr)
	}
	it.ops.push(result)
	return nil
}

func (it *Interpreter) visitUnaryExpression(n *ast.UnaryExpression) error {
	operand, err := it.Eval(n.Operand)
	if err != nil {
		return err
	}
	switch n.Op {
	case ast.UnaryNot:
		it.ops.push(value.Bool(!value.Truthy(operand)))
		return nil
	case ast.UnaryNeg:
		result, opErr := value.Sub(value.Int(0), operand)
		if opErr != nil {
			return it.errf(n, errors.UnsupportedOperation, "%s", opErr)
		}
		it.ops.push(result)
		return nil
	}
	return it.errf(n, errors.UnsupportedNode, "unsupported unary operator")
}

package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
)

// visit dispatches node to its evaluation method based on its concrete
// Go type (spec §9: "a tagged-variant AST with a single recursive
// evaluator function that matches on the variant", not an open visitor
// hierarchy). Every branch pushes exactly one Value onto it.ops, or
// returns an error and pushes nothing.
func (it *Interpreter) visit(node ast.Node) error {
	switch n := node.(type) {
	case *ast.NilLiteral:
		return it.visitNilLiteral(n)
	case *ast.BooleanLiteral:
		return it.visitBooleanLiteral(n)
	case *ast.IntegerLiteral:
		return it.visitIntegerLiteral(n)
	case *ast.FloatLiteral:
		return it.visitFloatLiteral(n)
	case *ast.StringLiteral:
		return it.visitStringLiteral(n)
	case *ast.SymbolLiteral:
		return it.visitSymbolLiteral(n)
	case *ast.ListLiteral:
		return it.visitListLiteral(n)
	case *ast.MapLiteral:
		return it.visitMapLiteral(n)
	case *ast.VariableReference:
		return it.visitVariableReference(n)
	case *ast.ConstReference:
		return it.visitConstReference(n)
	case *ast.SimpleAssignment:
		return it.visitSimpleAssignment(n)
	case *ast.MatchAssign:
		return it.visitMatchAssign(n)
	case *ast.LogicalExpression:
		return it.visitLogicalExpression(n)
	case *ast.EqualityExpression:
		return it.visitEqualityExpression(n)
	case *ast.RelationalExpression:
		return it.visitRelationalExpression(n)
	case *ast.BinaryExpression:
		return it.visitBinaryExpression(n)
	case *ast.UnaryExpression:
		return it.visitUnaryExpression(n)
	case *ast.FunctionDefinition:
		return it.visitFunctionDefinition(n)
	case *ast.FunctionCall:
		return it.visitFunctionCall(n)
	case *ast.Block:
		return it.visitBlock(n)
	case *ast.ExpressionList:
		return it.visitExpressionList(n)
	default:
		return it.errf(node, errors.UnsupportedNode, "unsupported node: %T", node)
	}
}

package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
)

// visitVariableReference implements spec §4.3: look up name; if
// missing, raise UndefinedVariable.
func (it *Interpreter) visitVariableReference(n *ast.VariableReference) error {
	v, ok := it.Table.Top().Get(n.Name)
	if !ok {
		return it.errf(n, errors.UndefinedVariable, "undefined variable %q", n.Name)
	}
	it.ops.push(v)
	return nil
}

// visitConstReference resolves an uppercase Const the same way a
// VariableReference does: both are plain bindings in the active scope
// chain, distinguished only lexically (spec §4.4's Const-vs-identifier
// split is a match-engine concern, not a different lookup mechanism).
func (it *Interpreter) visitConstReference(n *ast.ConstReference) error {
	v, ok := it.Table.Top().Get(n.Name)
	if !ok {
		return it.errf(n, errors.UndefinedVariable, "undefined constant %q", n.Name)
	}
	it.ops.push(v)
	return nil
}

// visitSimpleAssignment implements spec §4.3: evaluate value; if
// target is an identifier, bind it in the active scope to the current
// stack top; leave the value on the stack (so `a = x` evaluates to
// `x`, mirroring §3.4's MatchAssign invariant for plain assignment).
func (it *Interpreter) visitSimpleAssignment(n *ast.SimpleAssignment) error {
	v, err := it.Eval(n.Value)
	if err != nil {
		return err
	}
	it.Table.Top().Set(n.Target, v, true)
	it.ops.push(v)
	return nil
}

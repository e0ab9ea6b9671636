package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/value"
)

// visitFunctionDefinition implements spec §4.3: construct a Functor,
// register it in the function table under its name, push the Functor
// itself as a Value (so `def`'s result can be used, e.g. assigned).
func (it *Interpreter) visitFunctionDefinition(n *ast.FunctionDefinition) error {
	f := &value.Functor{Def: n}
	it.Funcs.Define(n.Name, f)
	it.ops.push(f)
	return nil
}

// visitFunctionCall implements spec §4.3: the callee must resolve to a
// function-table entry by identifier; arguments are evaluated then
// popped in reverse into formal parameters with make_new=true inside a
// fresh restrictive scope; the body's result is left on the stack.
func (it *Interpreter) visitFunctionCall(n *ast.FunctionCall) error {
	if f, ok := it.Funcs.Lookup(n.Callee); ok {
		return it.callFunctor(n, f)
	}
	if b, ok := it.builtins[n.Callee]; ok {
		return it.callBuiltinFn(n, b)
	}
	return it.callTargetError(n)
}

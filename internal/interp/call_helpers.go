package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/value"
)

// callFunctor implements spec §4.3's FunctionCall semantics: evaluate
// each argument left to right (conceptually pushing them onto the
// operand stack), push a new restrictive scope, pop the arguments in
// reverse into the formal parameter names with make_new=true — which
// nets out to positional binding, param[i] = arg[i] — evaluate the
// body, pop the scope, and leave the body's result on the stack.
//
// An ArityError is raised when the argument count doesn't match the
// parameter count, unless the last parameter is a splat (spec §9),
// which absorbs any surplus positional arguments (zero or more) into
// a List.
func (it *Interpreter) callFunctor(n *ast.FunctionCall, f *value.Functor) error {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.Eval(a)
		if err != nil {
			return err
		}
		args[i] = v
	}

	params := f.Def.Params
	hasSplat := len(params) > 0 && params[len(params)-1].Splat
	fixedCount := len(params)
	if hasSplat {
		fixedCount--
	}

	if hasSplat {
		if len(args) < fixedCount {
			return it.arityError(n, f, len(args))
		}
	} else if len(args) != fixedCount {
		return it.arityError(n, f, len(args))
	}

	pop := it.pushScope(true)
	defer pop()

	frame := it.Table.Top()
	for i := 0; i < fixedCount; i++ {
		frame.Set(params[i].Name, args[i], true)
	}
	if hasSplat {
		rest := append([]value.Value(nil), args[fixedCount:]...)
		frame.Set(params[fixedCount].Name, value.NewList(rest), true)
	}

	return it.visit(f.Def.Body)
}

func (it *Interpreter) arityError(n *ast.FunctionCall, f *value.Functor, got int) error {
	return it.errf(n, errors.ArityError, "%s expects %d argument(s), got %d", f.Def.Name, len(f.Def.Params), got)
}

func (it *Interpreter) callTargetError(n *ast.FunctionCall) error {
	return it.errf(n, errors.CallTargetError, "%q is not a registered function", n.Callee)
}

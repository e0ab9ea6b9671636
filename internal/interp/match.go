// The match engine implements spec §4.4: the `=:` operator unifies a
// pattern against a value, either succeeding (binding names) or
// raising MatchError. To preserve the all-or-nothing invariant of
// §3.4/§4.4, every match stages its bindings into a local buffer and
// the caller commits them to the active scope only once the entire
// top-level pattern has succeeded.
package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/value"
)

// binding is one proposed name->value assignment, staged until the
// overall match succeeds.
type binding struct {
	name        string
	value       value.Value
	discardable bool
}

// visitMatchAssign implements spec §4.3's MatchAssign: evaluate value;
// run the match engine; on success leave value on the stack (with
// bindings committed); on failure raise MatchError (and the stack is
// logically unchanged from the caller's perspective — nothing was
// committed).
func (it *Interpreter) visitMatchAssign(n *ast.MatchAssign) error {
	v, err := it.Eval(n.Value)
	if err != nil {
		return err
	}

	var bindings []binding
	if err := it.match(n.Pattern, v, &bindings); err != nil {
		return err
	}

	frame := it.Table.Top()
	for _, b := range bindings {
		frame.Set(b.name, b.value, true)
		if b.discardable {
			frame.MarkDiscardable(b.name)
		}
	}

	it.ops.push(v)
	return nil
}

// match unifies pattern p against value v, appending any bindings it
// would make to bindings. It never mutates the scope directly — that
// only happens once the top-level caller sees overall success.
func (it *Interpreter) match(p ast.Pattern, v value.Value, bindings *[]binding) error {
	switch pat := p.(type) {
	case *ast.LiteralPattern:
		return it.matchLiteral(pat, v)
	case *ast.IdentifierPattern:
		*bindings = append(*bindings, binding{name: pat.Name, value: v, discardable: pat.Discardable})
		return nil
	case *ast.ConstPattern:
		return it.matchConst(pat, v)
	case *ast.InterpolationExpression:
		return it.matchInterpolation(pat, v)
	case *ast.ListPattern:
		return it.matchList(pat, v, bindings)
	case *ast.MapPattern:
		return it.matchMap(pat, v, bindings)
	default:
		return it.errf(p, errors.UnsupportedNode, "unsupported pattern: %T", p)
	}
}

func (it *Interpreter) matchErrorf(node ast.Node, format string, args ...any) error {
	return it.errf(node, errors.MatchError, format, args...)
}

func (it *Interpreter) matchLiteral(pat *ast.LiteralPattern, v value.Value) error {
	lit, err := it.Eval(pat.Literal)
	if err != nil {
		return err
	}
	if !value.Equal(lit, v) {
		return it.matchErrorf(pat, "expected %s, got %s", lit, v)
	}
	return nil
}

// matchConst implements spec §4.4: a Const resolving to a Type value
// is a type check (exact match, no subtyping); a Const resolving to
// any other value behaves as a literal match against that value.
func (it *Interpreter) matchConst(pat *ast.ConstPattern, v value.Value) error {
	resolved, ok := it.Table.Top().Get(pat.Name)
	if !ok {
		return it.errf(pat, errors.UndefinedVariable, "undefined constant %q", pat.Name)
	}
	if t, isType := resolved.(*value.TypeObject); isType {
		if it.Kernel.TypeOf(v) != t {
			return it.matchErrorf(pat, "expected instance of %s, got %s", t.Name, v.TypeName())
		}
		return nil
	}
	if !value.Equal(resolved, v) {
		return it.matchErrorf(pat, "expected %s, got %s", resolved, v)
	}
	return nil
}

// matchInterpolation implements spec §4.4: evaluate expr first; if the
// result is a Type, do a type check; else do a value match. It never
// binds (enforced simply by never touching the bindings buffer).
func (it *Interpreter) matchInterpolation(pat *ast.InterpolationExpression, v value.Value) error {
	iv, err := it.Eval(pat.Inner)
	if err != nil {
		return err
	}
	if t, isType := iv.(*value.TypeObject); isType {
		if it.Kernel.TypeOf(v) != t {
			return it.matchErrorf(pat, "expected instance of %s, got %s", t.Name, v.TypeName())
		}
		return nil
	}
	if !value.Equal(iv, v) {
		return it.matchErrorf(pat, "expected %s, got %s", iv, v)
	}
	return nil
}

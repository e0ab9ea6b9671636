// Standard-library built-ins the core merely exercises (spec §1): the
// assertion library, to_s/length/type resolution, and the JSON/sort/
// string-case helpers SPEC_FULL.md adds to give the pack's domain
// dependencies a home.
package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/scope"
	"github.com/stockerssld/myst/internal/value"
)

// builtinFunc is a built-in function's Go implementation: it receives
// already-evaluated arguments and returns a Value or an error.
type builtinFunc func(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error)

func registerBuiltins(it *Interpreter) {
	it.builtins = map[string]builtinFunc{
		"to_s":          builtinToS,
		"length":        builtinLength,
		"type_of":       builtinTypeOf,
		"instance_id":   builtinInstanceID,
		"new_type":      builtinNewType,
		"new":           builtinNew,
		"assert_equal":  builtinAssertEqual,
		"sort":          builtinSort,
		"json_get":      builtinJSONGet,
		"json_set":      builtinJSONSet,
		"to_json":       builtinToJSON,
		"upcase":        builtinUpcase,
		"downcase":      builtinDowncase,
		"title":         builtinTitle,
		"display_width": builtinDisplayWidth,
	}
}

// callBuiltinFn evaluates call's arguments left to right and invokes b,
// pushing its result. Built-ins do not open a new scope frame — they
// are plain functions over values, not user-defined Functors.
func (it *Interpreter) callBuiltinFn(call *ast.FunctionCall, b builtinFunc) error {
	args := make([]value.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := it.Eval(a)
		if err != nil {
			return err
		}
		args[i] = v
	}
	result, err := b(it, call, args)
	if err != nil {
		return err
	}
	it.ops.push(result)
	return nil
}

func arity(it *Interpreter, call *ast.FunctionCall, args []value.Value, n int) error {
	if len(args) != n {
		return it.errf(call, errors.ArityError, "%s expects %d argument(s), got %d", call.Callee, n, len(args))
	}
	return nil
}

// builtinToS implements the `to_s` conversion used by String + <any>
// (spec §4.1) and exposed directly for user code.
func builtinToS(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	return value.Str(args[0].String()), nil
}

// builtinLength reports the element/byte count of a List, Map, or
// String; any other variant is an error (spec §4.5's
// disallow_primitives idea generalizes: length is only meaningful on
// containers and strings).
func builtinLength(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *value.List:
		return value.Int(len(v.Elements)), nil
	case *value.Map:
		return value.Int(v.Len()), nil
	case value.Str:
		return value.Int(len(v)), nil
	default:
		return nil, it.errf(call, errors.UnsupportedOperation, "length is not supported for %s", v.TypeName())
	}
}

// builtinTypeOf implements spec §4.5's type_of(value).
func builtinTypeOf(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	return it.Kernel.TypeOf(args[0]), nil
}

// builtinInstanceID exposes the stable Instance identity used for
// reference-equality checks (SPEC_FULL.md, grounded in google/uuid).
func builtinInstanceID(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	inst, ok := args[0].(*value.Instance)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "instance_id is not supported for %s", args[0].TypeName())
	}
	return value.Str(inst.ID.String()), nil
}

// builtinNewType constructs a fresh Type object (spec §3.1's Type
// variant) named after a Symbol argument, and registers it with the
// kernel under that name (see Kernel.Lookup). Const type patterns
// resolve their name through the scope, not through this registry.
func builtinNewType(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	sym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "new_type expects a Symbol name, got %s", args[0].TypeName())
	}
	t := &value.TypeObject{Name: string(sym), InstanceScope: scope.New(false)}
	it.Kernel.Register(t)
	return t, nil
}

// builtinNew constructs an Instance of a Type, seeding its instance
// scope from a Map of name->value pairs.
func builtinNew(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 2); err != nil {
		return nil, err
	}
	t, ok := args[0].(*value.TypeObject)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "new expects a Type as its first argument, got %s", args[0].TypeName())
	}
	fields, ok := args[1].(*value.Map)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "new expects a Map of fields as its second argument, got %s", args[1].TypeName())
	}
	vars := scope.New(false)
	for _, k := range fields.Keys() {
		v, _ := fields.Get(k)
		vars.Set(k, v, true)
	}
	return value.NewInstance(t, vars), nil
}

// builtinAssertEqual is the minimal assertion built-in spec §7 says
// the core merely exercises: on mismatch it raises an ordinary error
// carrying the left value, the right value, and a message.
func builtinAssertEqual(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, it.errf(call, errors.ArityError, "assert_equal expects 2 or 3 argument(s), got %d", len(args))
	}
	if value.Equal(args[0], args[1]) {
		return value.Bool(true), nil
	}
	msg := "assertion failed"
	if len(args) == 3 {
		if s, ok := args[2].(value.Str); ok {
			msg = string(s)
		}
	}
	return nil, it.errf(call, errors.AssertionFailure, "%s: expected %s, got %s", msg, args[1], args[0])
}

package interp

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/value"
)

// builtinToJSON serializes a Value to a JSON string, using
// tidwall/pretty to match the teacher's preference for human-readable
// diagnostic output over compact wire encoding.
func builtinToJSON(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 1); err != nil {
		return nil, err
	}
	raw, err := encodeJSON(args[0])
	if err != nil {
		return nil, it.errf(call, errors.UnsupportedOperation, "to_json: %s", err)
	}
	return value.Str(pretty.Pretty(raw)), nil
}

// builtinJSONGet implements json_get(json_string, path) via gjson's
// dotted-path query syntax, returning Nil when path is absent rather
// than raising (absence of an optional key is not a match failure
// here — json_get is a query, not a pattern).
func builtinJSONGet(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 2); err != nil {
		return nil, err
	}
	doc, ok := args[0].(value.Str)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "json_get expects a String document, got %s", args[0].TypeName())
	}
	path, ok := args[1].(value.Str)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "json_get expects a String path, got %s", args[1].TypeName())
	}
	res := gjson.Get(string(doc), string(path))
	if !res.Exists() {
		return value.NilValue, nil
	}
	return gjsonToValue(res), nil
}

// builtinJSONSet implements json_set(json_string, path, value) via
// sjson, returning the updated document as a new String (documents are
// immutable text here, not a live tree).
func builtinJSONSet(it *Interpreter, call *ast.FunctionCall, args []value.Value) (value.Value, error) {
	if err := arity(it, call, args, 3); err != nil {
		return nil, err
	}
	doc, ok := args[0].(value.Str)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "json_set expects a String document, got %s", args[0].TypeName())
	}
	path, ok := args[1].(value.Str)
	if !ok {
		return nil, it.errf(call, errors.UnsupportedOperation, "json_set expects a String path, got %s", args[1].TypeName())
	}
	out, err := sjson.Set(string(doc), string(path), valueToNative(args[2]))
	if err != nil {
		return nil, it.errf(call, errors.UnsupportedOperation, "json_set: %s", err)
	}
	return value.Str(out), nil
}

// gjsonToValue converts a gjson.Result into the Value model, preserving
// Map key order as gjson reports it.
func gjsonToValue(r gjson.Result) value.Value {
	switch {
	case r.IsArray():
		elems := make([]value.Value, 0)
		r.ForEach(func(_, v gjson.Result) bool {
			elems = append(elems, gjsonToValue(v))
			return true
		})
		return value.NewList(elems)
	case r.IsObject():
		m := value.NewMap()
		r.ForEach(func(k, v gjson.Result) bool {
			m.Set(k.String(), gjsonToValue(v))
			return true
		})
		return m
	case r.Type == gjson.Null:
		return value.NilValue
	case r.Type == gjson.True || r.Type == gjson.False:
		return value.Bool(r.Bool())
	case r.Type == gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return value.Int(int64(r.Num))
		}
		return value.Float(r.Num)
	default:
		return value.Str(r.Str)
	}
}

// valueToNative converts a Value into a plain Go value sjson.Set can
// re-encode (map/slice/string/int64/float64/bool/nil).
func valueToNative(v value.Value) any {
	switch vv := v.(type) {
	case value.Nil:
		return nil
	case value.Bool:
		return bool(vv)
	case value.Int:
		return int64(vv)
	case value.Float:
		return float64(vv)
	case value.Str:
		return string(vv)
	case value.Symbol:
		return string(vv)
	case *value.List:
		out := make([]any, len(vv.Elements))
		for i, e := range vv.Elements {
			out[i] = valueToNative(e)
		}
		return out
	case *value.Map:
		out := make(map[string]any, vv.Len())
		for _, k := range vv.Keys() {
			val, _ := vv.Get(k)
			out[k] = valueToNative(val)
		}
		return out
	default:
		return vv.String()
	}
}

// encodeJSON builds a JSON document for a Value via sjson.Set into a
// throwaway "v" field, since the Value model has no direct JSON
// marshaler and sjson only writes, never builds raw documents.
func encodeJSON(v value.Value) ([]byte, error) {
	doc, err := sjson.Set("{}", "v", valueToNative(v))
	if err != nil {
		return nil, err
	}
	return []byte(gjson.Get(doc, "v").Raw), nil
}

// Package value implements the tagged Value model of spec §3.1: a
// closed sum of Nil, Bool, Int, Float, String, Symbol, List, Map,
// Type, Instance and Functor, plus the equality/truthiness/arithmetic
// rules of §3.1 and §4.1.
//
// The value model is a closed set, not an inheritance tree: every
// variant is a concrete Go type implementing the Value interface, and
// the evaluator switches on concrete type rather than opening a method
// per operation on an interface hierarchy (spec §9, "Values as sum,
// not inheritance tree").
package value

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/stockerssld/myst/internal/ast"
)

// Kind tags a Value's variant for fast switches where a type switch
// would be awkward (e.g. building error messages).
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSymbol
	KindList
	KindMap
	KindType
	KindInstance
	KindFunctor
)

// Value is the closed sum every evaluated expression produces.
type Value interface {
	Kind() Kind
	// TypeName is the stable per-variant type-name string of spec §4.1
	// ("Integer", "Float", ... or, for Instance, the type's own name).
	TypeName() string
	String() string
}

// Scope is the minimal surface the value model needs from a symbol
// table to give Type/Instance values an associated scope, without
// internal/value importing internal/scope (which itself needs
// value.Value for its storage).
type Scope interface {
	Get(name string) (Value, bool)
	Set(name string, v Value, makeNew bool)
}

// ---- Nil ----

// Nil is the unit value; there is exactly one.
type Nil struct{}

func (Nil) Kind() Kind        { return KindNil }
func (Nil) TypeName() string  { return "Nil" }
func (Nil) String() string    { return "nil" }

// NilValue is the singleton Nil instance.
var NilValue = Nil{}

// ---- Bool ----

type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (Bool) TypeName() string { return "Boolean" }
func (b Bool) String() string { return fmt.Sprintf("%t", bool(b)) }

// ---- Int ----

type Int int64

func (Int) Kind() Kind       { return KindInt }
func (Int) TypeName() string { return "Integer" }
func (i Int) String() string { return fmt.Sprintf("%d", int64(i)) }

// ---- Float ----

type Float float64

func (Float) Kind() Kind       { return KindFloat }
func (Float) TypeName() string { return "Float" }
func (f Float) String() string { return fmt.Sprintf("%g", float64(f)) }

// ---- String ----

type Str string

func (Str) Kind() Kind       { return KindString }
func (Str) TypeName() string { return "String" }
func (s Str) String() string { return string(s) }

// ---- Symbol ----

type Symbol string

func (Symbol) Kind() Kind       { return KindSymbol }
func (Symbol) TypeName() string { return "Symbol" }
func (s Symbol) String() string { return ":" + string(s) }

// ---- List ----

// List is reference-counted by sharing the pointer: assigning a List
// value copies the pointer, not the backing slice, which is what
// spec §8.1's "reference equality for containers" requires.
type List struct {
	Elements []Value
}

func NewList(elems []Value) *List { return &List{Elements: elems} }

func (*List) Kind() Kind       { return KindList }
func (*List) TypeName() string { return "List" }
func (l *List) String() string {
	s := "["
	for i, e := range l.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

// ---- Map ----

// Map preserves insertion order (spec §3.1): keys is the ordered key
// list, entries is the lookup table.
type Map struct {
	keys    []string
	entries map[string]Value
}

func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

func (m *Map) Kind() Kind       { return KindMap }
func (m *Map) TypeName() string { return "Map" }

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *Map) Set(key string, v Value) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

func (m *Map) Keys() []string { return m.keys }
func (m *Map) Len() int       { return len(m.keys) }

func (m *Map) String() string {
	s := "{"
	for i, k := range m.keys {
		if i > 0 {
			s += ", "
		}
		s += k + ": " + m.entries[k].String()
	}
	return s + "}"
}

// ---- Type ----

// TypeObject is a named type with an instance scope (members visible
// on instances of the type) and an optional enclosing scope.
type TypeObject struct {
	Name          string
	InstanceScope Scope
	Parent        Scope
}

func (*TypeObject) Kind() Kind       { return KindType }
func (t *TypeObject) TypeName() string { return "Type" }
func (t *TypeObject) String() string { return t.Name }

// ---- Instance ----

// Instance is an owner-of-type plus its own scope (instance
// variables). ID is a stable identity reported by the instance_id
// built-in; Equal compares Instances by pointer, not by ID.
type Instance struct {
	Type *TypeObject
	Vars Scope
	ID   uuid.UUID
}

func NewInstance(t *TypeObject, vars Scope) *Instance {
	return &Instance{Type: t, Vars: vars, ID: uuid.New()}
}

func (*Instance) Kind() Kind         { return KindInstance }
func (i *Instance) TypeName() string { return i.Type.Name }
func (i *Instance) String() string   { return "#<" + i.Type.Name + ">" }

// ---- Functor ----

// Functor wraps a function definition: its formal parameter list and
// body AST. Closures are out of scope (spec §9): a Functor carries no
// captured environment.
type Functor struct {
	Def *ast.FunctionDefinition
}

func (*Functor) Kind() Kind         { return KindFunctor }
func (*Functor) TypeName() string   { return "Functor" }
func (f *Functor) String() string   { return "#<Functor " + f.Def.Name + ">" }

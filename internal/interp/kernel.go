package interp

import (
	"fmt"

	"github.com/stockerssld/myst/internal/scope"
	"github.com/stockerssld/myst/internal/value"
)

// canonicalTypeNames lists the stable type-name strings spec §4.1
// assigns to every primitive variant.
var canonicalTypeNames = []string{
	"Nil", "Boolean", "Integer", "Float", "String", "Symbol", "List", "Map", "Functor",
}

// Kernel is the root "kernel scope" of spec §4.5: it holds the
// canonical Type object for every primitive variant, keyed by that
// variant's stable type-name string, plus the user-defined types
// registered at runtime via the new_type built-in.
type Kernel struct {
	byName map[string]*value.TypeObject
}

// NewKernel builds the kernel scope with one canonical Type per
// primitive variant. The same *value.TypeObject is returned on every
// call to TypeOf for a given variant, satisfying spec §8.2's identity
// stability property.
func NewKernel() *Kernel {
	k := &Kernel{byName: make(map[string]*value.TypeObject)}
	for _, name := range canonicalTypeNames {
		k.byName[name] = &value.TypeObject{
			Name:          name,
			InstanceScope: scope.New(false),
		}
	}
	return k
}

// Lookup resolves a type-name string to its canonical Type object.
func (k *Kernel) Lookup(name string) (*value.TypeObject, bool) {
	t, ok := k.byName[name]
	return t, ok
}

// Register adds a user-defined Type object (via new_type) under its
// own name, so it can be found by name alongside the primitives.
func (k *Kernel) Register(t *value.TypeObject) {
	k.byName[t.Name] = t
}

// TypeOf implements spec §4.5's type_of(value): for Type and Instance
// it is trivially derivable (a Type's type is itself; an Instance's
// type is the TypeObject it was constructed from); for primitives, it
// is the canonical Type looked up by the variant's type-name string.
func (k *Kernel) TypeOf(v value.Value) *value.TypeObject {
	switch vv := v.(type) {
	case *value.TypeObject:
		return vv
	case *value.Instance:
		return vv.Type
	default:
		t, ok := k.byName[v.TypeName()]
		if !ok {
			panic(fmt.Sprintf("kernel: no canonical type registered for %q", v.TypeName()))
		}
		return t
	}
}

// ScopeOf implements spec §4.5's scope_of(value): for Instance, its
// own instance scope; for Type, its scope; for primitives, the
// instance scope of their canonical Type.
func (k *Kernel) ScopeOf(v value.Value) value.Scope {
	switch vv := v.(type) {
	case *value.Instance:
		return vv.Vars
	case *value.TypeObject:
		return vv.InstanceScope
	default:
		return k.TypeOf(v).InstanceScope
	}
}

// DisallowPrimitives implements spec §4.5's disallow_primitives: it
// raises when op is attempted on a bare primitive rather than a Type
// or Instance value, since only those carry an owned scope meant to
// hold instance-scope-style state.
func (k *Kernel) DisallowPrimitives(v value.Value, op string) error {
	switch v.(type) {
	case *value.TypeObject, *value.Instance:
		return nil
	default:
		return fmt.Errorf("%s is not supported on primitive value of type %s", op, v.TypeName())
	}
}

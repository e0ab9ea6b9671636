package scope

import "github.com/stockerssld/myst/internal/value"

// FunctionTable is the process-wide map from identifier to an ordered
// list of Functor definitions (spec §3.3). Defining a name appends to
// its list; calling a name uses the first (or only) entry — overload
// selection beyond "first" is out of scope.
type FunctionTable struct {
	entries map[string][]*value.Functor
}

// NewFunctionTable creates an empty function table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{entries: make(map[string][]*value.Functor)}
}

// Define appends f to the list of functors registered under name.
func (t *FunctionTable) Define(name string, f *value.Functor) {
	t.entries[name] = append(t.entries[name], f)
}

// Lookup returns the functor a call to name should dispatch to: the
// first entry registered under that name, or false if none exists.
func (t *FunctionTable) Lookup(name string) (*value.Functor, bool) {
	fs, ok := t.entries[name]
	if !ok || len(fs) == 0 {
		return nil, false
	}
	return fs[0], true
}

// All returns every functor registered under name, in definition
// order. Dispatch does not use it; it only ever calls Lookup.
func (t *FunctionTable) All(name string) []*value.Functor {
	return t.entries[name]
}

package interp

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/value"
)

// matchMap implements spec §4.4's map-pattern rule: the value must be
// a Map; every listed key must be present; each sub-pattern matches
// the corresponding value; extra keys in the value are ignored.
func (it *Interpreter) matchMap(pat *ast.MapPattern, v value.Value, bindings *[]binding) error {
	m, ok := v.(*value.Map)
	if !ok {
		return it.matchErrorf(pat, "expected Map, got %s", v.TypeName())
	}

	for _, entry := range pat.Entries {
		val, ok := m.Get(entry.Key)
		if !ok {
			return it.matchErrorf(pat, "missing key %q", entry.Key)
		}
		if err := it.match(entry.Pattern, val, bindings); err != nil {
			return err
		}
	}
	return nil
}

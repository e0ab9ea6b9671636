package value

// Equal implements spec §3.1's equality rules: Int and Float compare
// equal when mathematically equal (1 == 1.0, not 1 == 1.1); every
// other cross-variant comparison is unequal. Same-variant comparisons
// fall through to structural (List/Map) or identity (Type/Instance/
// Functor) equality.
func Equal(a, b Value) bool {
	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			return an == bn
		}
		return false
	}

	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			bval, ok := bv.Get(k)
			if !ok || !Equal(av.entries[k], bval) {
				return false
			}
		}
		return true
	case *TypeObject:
		bv, ok := b.(*TypeObject)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	case *Functor:
		bv, ok := b.(*Functor)
		return ok && av == bv
	default:
		return false
	}
}

// asNumber reports whether v is Int or Float and its value as float64,
// used for the Int/Float cross-equality rule.
func asNumber(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is Int or Float.
func IsNumeric(v Value) bool {
	_, ok := asNumber(v)
	return ok
}

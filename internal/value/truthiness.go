package value

// Truthy implements spec §3.1: a Value is falsey iff it is Nil or
// Bool(false); every other value — including 0, 0.0, "", and an empty
// List or Map — is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

package ast

import "strings"

// LiteralPattern matches a literal value (nil/bool/int/float/string/symbol)
// per spec §4.4 using Value equality rules, including Int/Float
// cross-equality.
type LiteralPattern struct {
	base
	Literal Expression // one of the *Literal expression nodes
}

func (n *LiteralPattern) String() string { return n.Literal.String() }
func (*LiteralPattern) patternNode()     {}

// IdentifierPattern binds Name to the matched value unconditionally.
// Discardable is set for `_name` patterns (spec §4.4): still a real
// binding, just flagged as not meant to be read back.
type IdentifierPattern struct {
	base
	Name        string
	Discardable bool
}

func (n *IdentifierPattern) String() string { return n.Name }
func (*IdentifierPattern) patternNode()     {}

// ConstPattern names an uppercase identifier resolved at match time:
// against a Type value it is a type check, otherwise a literal-value
// match against whatever the Const is bound to (spec §4.4).
type ConstPattern struct {
	base
	Name string
}

func (n *ConstPattern) String() string { return n.Name }
func (*ConstPattern) patternNode()     {}

// ListPattern destructures a List value. SplatIndex is -1 when there is
// no splat element; otherwise it is the index within Elements of the
// SplatPattern element.
type ListPattern struct {
	base
	Elements   []Pattern
	SplatIndex int
}

func (n *ListPattern) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (*ListPattern) patternNode() {}

// SplatPattern is `*name` inside a ListPattern: binds the captured
// middle slice as a new List value.
type SplatPattern struct {
	base
	Name string
}

func (n *SplatPattern) String() string { return "*" + n.Name }
func (*SplatPattern) patternNode()     {}

// MapPatternEntry is one key/sub-pattern pair of a MapPattern.
type MapPatternEntry struct {
	Key     string
	Pattern Pattern
}

// MapPattern requires the value to be a Map containing every listed
// key; extra keys in the value are ignored (spec §4.4).
type MapPattern struct {
	base
	Entries []MapPatternEntry
}

func (n *MapPattern) String() string {
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		parts[i] = e.Key + ": " + e.Pattern.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (*MapPattern) patternNode() {}

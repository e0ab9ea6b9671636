// Package ast defines the node-kind contract the evaluator consumes
// (spec §6.1): every node carries a source Location used for error
// messages, and the evaluator dispatches purely on Go type, never on a
// name string.
package ast

import (
	"fmt"
	"strings"

	"github.com/stockerssld/myst/internal/lexer"
)

// Location is the file/line/column a node originated from.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string { return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column) }

// FromPos builds a Location from a lexer.Position and file name.
func FromPos(file string, pos lexer.Position) Location {
	return Location{File: file, Line: pos.Line, Column: pos.Column}
}

// Node is the base interface every AST node implements.
type Node interface {
	Loc() Location
	String() string
}

// Expression is any node the evaluator can push a Value for.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is any node the match engine can unify against a value.
type Pattern interface {
	Node
	patternNode()
}

// base embeds a Location and satisfies the common part of Node.
type base struct {
	Location Location
}

func (b base) Loc() Location { return b.Location }

// ---- literals ----

type NilLiteral struct{ base }
type BooleanLiteral struct {
	base
	Value bool
}
type IntegerLiteral struct {
	base
	Value int64
}
type FloatLiteral struct {
	base
	Value float64
}
type StringLiteral struct {
	base
	Value string
}
type SymbolLiteral struct {
	base
	Value string
}

func (n *NilLiteral) String() string     { return "nil" }
func (n *BooleanLiteral) String() string { return fmt.Sprintf("%t", n.Value) }
func (n *IntegerLiteral) String() string { return fmt.Sprintf("%d", n.Value) }
func (n *FloatLiteral) String() string   { return fmt.Sprintf("%g", n.Value) }
func (n *StringLiteral) String() string  { return fmt.Sprintf("%q", n.Value) }
func (n *SymbolLiteral) String() string  { return ":" + n.Value }

func (*NilLiteral) expressionNode()     {}
func (*BooleanLiteral) expressionNode() {}
func (*IntegerLiteral) expressionNode() {}
func (*FloatLiteral) expressionNode()   {}
func (*StringLiteral) expressionNode()  {}
func (*SymbolLiteral) expressionNode()  {}

// ---- containers ----

type ListLiteral struct {
	base
	Elements []Expression
}

func (n *ListLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (*ListLiteral) expressionNode() {}

// MapEntry is one key/value pair of a MapLiteral. Keys are symbol-like
// and evaluated statically (their text is the key), values are
// expressions evaluated left to right.
type MapEntry struct {
	Key   string
	Value Expression
}

type MapLiteral struct {
	base
	Entries []MapEntry
}

func (n *MapLiteral) String() string {
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (*MapLiteral) expressionNode() {}

// ---- variables & constants ----

type VariableReference struct {
	base
	Name string
}

func (n *VariableReference) String() string { return n.Name }
func (*VariableReference) expressionNode()  {}

type ConstReference struct {
	base
	Name string
}

func (n *ConstReference) String() string { return n.Name }
func (*ConstReference) expressionNode()  {}

// ---- assignment / match ----

type SimpleAssignment struct {
	base
	Target string
	Value  Expression
}

func (n *SimpleAssignment) String() string { return n.Target + " = " + n.Value.String() }
func (*SimpleAssignment) expressionNode()  {}

type MatchAssign struct {
	base
	Pattern Pattern
	Value   Expression
}

func (n *MatchAssign) String() string { return n.Pattern.String() + " =: " + n.Value.String() }
func (*MatchAssign) expressionNode()  {}

// ---- operators ----

type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

type LogicalExpression struct {
	base
	Op    LogicalOp
	Left  Expression
	Right Expression
}

func (n *LogicalExpression) String() string {
	op := "&&"
	if n.Op == LogicalOr {
		op = "||"
	}
	return fmt.Sprintf("(%s %s %s)", n.Left, op, n.Right)
}
func (*LogicalExpression) expressionNode() {}

type EqualityOp int

const (
	EqEqual EqualityOp = iota
	EqNotEqual
)

type EqualityExpression struct {
	base
	Op    EqualityOp
	Left  Expression
	Right Expression
}

func (n *EqualityExpression) String() string {
	op := "=="
	if n.Op == EqNotEqual {
		op = "!="
	}
	return fmt.Sprintf("(%s %s %s)", n.Left, op, n.Right)
}
func (*EqualityExpression) expressionNode() {}

type RelationalOp int

const (
	RelLess RelationalOp = iota
	RelLessEqual
	RelGreater
	RelGreaterEqual
)

type RelationalExpression struct {
	base
	Op    RelationalOp
	Left  Expression
	Right Expression
}

var relSymbols = map[RelationalOp]string{
	RelLess: "<", RelLessEqual: "<=", RelGreater: ">", RelGreaterEqual: ">=",
}

func (n *RelationalExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, relSymbols[n.Op], n.Right)
}
func (*RelationalExpression) expressionNode() {}

type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
)

var binSymbols = map[BinaryOp]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
}

type BinaryExpression struct {
	base
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (n *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, binSymbols[n.Op], n.Right)
}
func (*BinaryExpression) expressionNode() {}

type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnaryNot
)

type UnaryExpression struct {
	base
	Op      UnaryOp
	Operand Expression
}

func (n *UnaryExpression) String() string {
	sym := "-"
	if n.Op == UnaryNot {
		sym = "!"
	}
	return sym + n.Operand.String()
}
func (*UnaryExpression) expressionNode() {}

// ---- interpolation (pattern context only) ----

type InterpolationExpression struct {
	base
	Inner Expression
}

func (n *InterpolationExpression) String() string { return "<" + n.Inner.String() + ">" }
func (*InterpolationExpression) expressionNode()   {}
func (*InterpolationExpression) patternNode()      {}

// ---- functions ----

// Param is one formal parameter; Splat marks `*name` capturing surplus
// positional arguments.
type Param struct {
	Name  string
	Splat bool
}

type FunctionDefinition struct {
	base
	Name   string
	Params []Param
	Body   *Block
}

func (n *FunctionDefinition) String() string {
	names := make([]string, len(n.Params))
	for i, p := range n.Params {
		if p.Splat {
			names[i] = "*" + p.Name
		} else {
			names[i] = p.Name
		}
	}
	return fmt.Sprintf("def %s(%s) ... end", n.Name, strings.Join(names, ", "))
}
func (*FunctionDefinition) expressionNode() {}

type FunctionCall struct {
	base
	Callee string
	Args   []Expression
}

func (n *FunctionCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Callee, strings.Join(parts, ", "))
}
func (*FunctionCall) expressionNode() {}

// ---- blocks ----

// Block is a sequence of expressions whose result is the last child's
// result (spec §3.4: exactly one net value after N children).
type Block struct {
	base
	Children []Expression
}

func (n *Block) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, "; ")
}
func (*Block) expressionNode() {}

// ExpressionList is a bare top-to-bottom sequence, distinct from Block
// in the parser's grammar (e.g. a program body) but evaluated the same
// way: all but the last result are discarded.
type ExpressionList struct {
	base
	Children []Expression
}

func (n *ExpressionList) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, "\n")
}
func (*ExpressionList) expressionNode() {}

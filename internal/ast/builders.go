package ast

// Constructors for every node kind, so other packages (the parser) can
// build nodes without naming the unexported `base` embed directly.

func NewNilLiteral(loc Location) *NilLiteral { return &NilLiteral{base{loc}} }

func NewBooleanLiteral(loc Location, v bool) *BooleanLiteral {
	return &BooleanLiteral{base{loc}, v}
}

func NewIntegerLiteral(loc Location, v int64) *IntegerLiteral {
	return &IntegerLiteral{base{loc}, v}
}

func NewFloatLiteral(loc Location, v float64) *FloatLiteral {
	return &FloatLiteral{base{loc}, v}
}

func NewStringLiteral(loc Location, v string) *StringLiteral {
	return &StringLiteral{base{loc}, v}
}

func NewSymbolLiteral(loc Location, v string) *SymbolLiteral {
	return &SymbolLiteral{base{loc}, v}
}

func NewListLiteral(loc Location, elems []Expression) *ListLiteral {
	return &ListLiteral{base{loc}, elems}
}

func NewMapLiteral(loc Location, entries []MapEntry) *MapLiteral {
	return &MapLiteral{base{loc}, entries}
}

func NewVariableReference(loc Location, name string) *VariableReference {
	return &VariableReference{base{loc}, name}
}

func NewConstReference(loc Location, name string) *ConstReference {
	return &ConstReference{base{loc}, name}
}

func NewSimpleAssignment(loc Location, target string, value Expression) *SimpleAssignment {
	return &SimpleAssignment{base{loc}, target, value}
}

func NewMatchAssign(loc Location, pattern Pattern, value Expression) *MatchAssign {
	return &MatchAssign{base{loc}, pattern, value}
}

func NewLogicalExpression(loc Location, op LogicalOp, left, right Expression) *LogicalExpression {
	return &LogicalExpression{base{loc}, op, left, right}
}

func NewEqualityExpression(loc Location, op EqualityOp, left, right Expression) *EqualityExpression {
	return &EqualityExpression{base{loc}, op, left, right}
}

func NewRelationalExpression(loc Location, op RelationalOp, left, right Expression) *RelationalExpression {
	return &RelationalExpression{base{loc}, op, left, right}
}

func NewBinaryExpression(loc Location, op BinaryOp, left, right Expression) *BinaryExpression {
	return &BinaryExpression{base{loc}, op, left, right}
}

func NewUnaryExpression(loc Location, op UnaryOp, operand Expression) *UnaryExpression {
	return &UnaryExpression{base{loc}, op, operand}
}

func NewInterpolationExpression(loc Location, inner Expression) *InterpolationExpression {
	return &InterpolationExpression{base{loc}, inner}
}

func NewFunctionDefinition(loc Location, name string, params []Param, body *Block) *FunctionDefinition {
	return &FunctionDefinition{base{loc}, name, params, body}
}

func NewFunctionCall(loc Location, callee string, args []Expression) *FunctionCall {
	return &FunctionCall{base{loc}, callee, args}
}

func NewBlock(loc Location, children []Expression) *Block {
	return &Block{base{loc}, children}
}

func NewExpressionList(loc Location, children []Expression) *ExpressionList {
	return &ExpressionList{base{loc}, children}
}

// ---- patterns ----

func NewLiteralPattern(loc Location, lit Expression) *LiteralPattern {
	return &LiteralPattern{base{loc}, lit}
}

func NewIdentifierPattern(loc Location, name string, discardable bool) *IdentifierPattern {
	return &IdentifierPattern{base{loc}, name, discardable}
}

func NewConstPattern(loc Location, name string) *ConstPattern {
	return &ConstPattern{base{loc}, name}
}

func NewListPattern(loc Location, elems []Pattern, splatIndex int) *ListPattern {
	return &ListPattern{base{loc}, elems, splatIndex}
}

func NewSplatPattern(loc Location, name string) *SplatPattern {
	return &SplatPattern{base{loc}, name}
}

func NewMapPattern(loc Location, entries []MapPatternEntry) *MapPattern {
	return &MapPattern{base{loc}, entries}
}

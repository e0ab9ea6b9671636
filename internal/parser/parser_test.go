package parser

import (
	"testing"

	"github.com/stockerssld/myst/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.ExpressionList {
	t.Helper()
	p := New("test.myst", src)
	prog, errs := p.Parse()
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParseLiterals(t *testing.T) {
	prog := parseOK(t, "1\n1.5\n\"hi\"\n:sym\ntrue\nfalse\nnil")
	if len(prog.Children) != 7 {
		t.Fatalf("expected 7 top-level expressions, got %d", len(prog.Children))
	}
	if _, ok := prog.Children[0].(*ast.IntegerLiteral); !ok {
		t.Errorf("expected IntegerLiteral, got %T", prog.Children[0])
	}
	if _, ok := prog.Children[6].(*ast.NilLiteral); !ok {
		t.Errorf("expected NilLiteral, got %T", prog.Children[6])
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := parseOK(t, "1 + 2 * 3")
	bin, ok := prog.Children[0].(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected BinaryExpression, got %T", prog.Children[0])
	}
	if bin.Op != ast.BinAdd {
		t.Fatalf("expected top-level + , got %v", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || rhs.Op != ast.BinMul {
		t.Fatalf("expected right side to be a multiplication, got %#v", bin.Right)
	}
}

func TestParseSimpleAssignment(t *testing.T) {
	prog := parseOK(t, "a = 1")
	assign, ok := prog.Children[0].(*ast.SimpleAssignment)
	if !ok {
		t.Fatalf("expected SimpleAssignment, got %T", prog.Children[0])
	}
	if assign.Target != "a" {
		t.Errorf("expected target 'a', got %q", assign.Target)
	}
}

func TestParseConstAssignment(t *testing.T) {
	prog := parseOK(t, "A = false")
	assign, ok := prog.Children[0].(*ast.SimpleAssignment)
	if !ok {
		t.Fatalf("expected SimpleAssignment, got %T", prog.Children[0])
	}
	if assign.Target != "A" {
		t.Errorf("expected target 'A', got %q", assign.Target)
	}
}

func TestParseMatchAssignList(t *testing.T) {
	prog := parseOK(t, "[a, b] =: [1, 2]")
	match, ok := prog.Children[0].(*ast.MatchAssign)
	if !ok {
		t.Fatalf("expected MatchAssign, got %T", prog.Children[0])
	}
	listPat, ok := match.Pattern.(*ast.ListPattern)
	if !ok {
		t.Fatalf("expected ListPattern, got %T", match.Pattern)
	}
	if len(listPat.Elements) != 2 || listPat.SplatIndex != -1 {
		t.Errorf("unexpected list pattern shape: %+v", listPat)
	}
}

func TestParseMatchAssignSplat(t *testing.T) {
	prog := parseOK(t, "[1, *mid, 4] =: [1, 2, 3, 4]")
	match := prog.Children[0].(*ast.MatchAssign)
	listPat := match.Pattern.(*ast.ListPattern)
	if listPat.SplatIndex != 1 {
		t.Fatalf("expected splat at index 1, got %d", listPat.SplatIndex)
	}
	splat, ok := listPat.Elements[1].(*ast.SplatPattern)
	if !ok || splat.Name != "mid" {
		t.Fatalf("expected splat pattern named 'mid', got %#v", listPat.Elements[1])
	}
}

func TestParseMatchAssignMap(t *testing.T) {
	prog := parseOK(t, "{a: [a, 2]} =: {a: [1, 2]}")
	match := prog.Children[0].(*ast.MatchAssign)
	mapPat, ok := match.Pattern.(*ast.MapPattern)
	if !ok || len(mapPat.Entries) != 1 || mapPat.Entries[0].Key != "a" {
		t.Fatalf("unexpected map pattern: %#v", match.Pattern)
	}
}

func TestParseInterpolationPattern(t *testing.T) {
	prog := parseOK(t, "<a> =: 2.0")
	match := prog.Children[0].(*ast.MatchAssign)
	if _, ok := match.Pattern.(*ast.InterpolationExpression); !ok {
		t.Fatalf("expected InterpolationExpression pattern, got %T", match.Pattern)
	}
}

func TestParseDiscardableIdentifierPattern(t *testing.T) {
	prog := parseOK(t, "_skip =: 1")
	match := prog.Children[0].(*ast.MatchAssign)
	idPat, ok := match.Pattern.(*ast.IdentifierPattern)
	if !ok || !idPat.Discardable {
		t.Fatalf("expected discardable IdentifierPattern, got %#v", match.Pattern)
	}
}

func TestParseFunctionDefinitionAndCall(t *testing.T) {
	prog := parseOK(t, "def f(x) x + 1 end\nf(2)")
	def, ok := prog.Children[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected FunctionDefinition, got %T", prog.Children[0])
	}
	if def.Name != "f" || len(def.Params) != 1 || def.Params[0].Name != "x" {
		t.Fatalf("unexpected function definition shape: %#v", def)
	}
	if len(def.Body.Children) != 1 {
		t.Fatalf("expected 1 body expression, got %d", len(def.Body.Children))
	}

	call, ok := prog.Children[1].(*ast.FunctionCall)
	if !ok || call.Callee != "f" || len(call.Args) != 1 {
		t.Fatalf("expected call to f with 1 arg, got %#v", prog.Children[1])
	}
}

func TestParseFunctionDefinitionWithSplatParam(t *testing.T) {
	prog := parseOK(t, "def f(x, *rest) x end")
	def := prog.Children[0].(*ast.FunctionDefinition)
	if len(def.Params) != 2 || !def.Params[1].Splat || def.Params[1].Name != "rest" {
		t.Fatalf("unexpected params: %#v", def.Params)
	}
}

func TestParseLogicalShortCircuitPrecedence(t *testing.T) {
	prog := parseOK(t, "a == 1 && b == 2")
	logical, ok := prog.Children[0].(*ast.LogicalExpression)
	if !ok || logical.Op != ast.LogicalAnd {
		t.Fatalf("expected top-level &&, got %#v", prog.Children[0])
	}
	if _, ok := logical.Left.(*ast.EqualityExpression); !ok {
		t.Fatalf("expected equality on the left of &&, got %T", logical.Left)
	}
}

func TestParseUnaryAndGrouping(t *testing.T) {
	prog := parseOK(t, "-(1 + 2)")
	unary, ok := prog.Children[0].(*ast.UnaryExpression)
	if !ok || unary.Op != ast.UnaryNeg {
		t.Fatalf("expected unary negation, got %#v", prog.Children[0])
	}
	if _, ok := unary.Operand.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected grouped binary expression, got %T", unary.Operand)
	}
}

func TestParseErrorRecoveryReportsBoth(t *testing.T) {
	p := New("test.myst", "1 +\n2 *")
	_, errs := p.Parse()
	if len(errs) != 2 {
		t.Fatalf("expected 2 syntax errors, got %d: %v", len(errs), errs)
	}
}

func TestParseMissingEndIsReported(t *testing.T) {
	p := New("test.myst", "def f(x) x")
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Code != ErrMissingEnd {
		t.Fatalf("expected a single %s error, got %v", ErrMissingEnd, errs)
	}
}

package ast

import "testing"

func TestListLiteralString(t *testing.T) {
	lit := &ListLiteral{Elements: []Expression{
		&IntegerLiteral{Value: 1},
		&IntegerLiteral{Value: 2},
	}}
	if got, want := lit.String(), "[1, 2]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMatchAssignString(t *testing.T) {
	m := &MatchAssign{
		Pattern: &IdentifierPattern{Name: "a"},
		Value:   &IntegerLiteral{Value: 1},
	}
	if got, want := m.String(), "a =: 1"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestListPatternKeepsSplatIndex(t *testing.T) {
	p := &ListPattern{
		Elements: []Pattern{
			&IdentifierPattern{Name: "head"},
			&SplatPattern{Name: "rest"},
		},
		SplatIndex: 1,
	}
	if p.SplatIndex != 1 {
		t.Fatalf("expected splat index 1, got %d", p.SplatIndex)
	}
}

func TestFunctionDefinitionStringWithSplat(t *testing.T) {
	fn := &FunctionDefinition{
		Name:   "f",
		Params: []Param{{Name: "x"}, {Name: "rest", Splat: true}},
		Body:   &Block{},
	}
	want := "def f(x, *rest) ... end"
	if got := fn.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

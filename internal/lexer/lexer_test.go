package lexer

import "testing"

func TestNextToken_Operators(t *testing.T) {
	input := `a =: 1 == 2 != 3 <= 4 >= 5 && true || false`

	tests := []struct {
		wantType TokenType
		wantLit  string
	}{
		{IDENT, "a"},
		{MATCH, "=:"},
		{INT, "1"},
		{EQ, "=="},
		{INT, "2"},
		{NE, "!="},
		{INT, "3"},
		{LE, "<="},
		{INT, "4"},
		{GE, ">="},
		{INT, "5"},
		{AND, "&&"},
		{TRUE, "true"},
		{OR, "||"},
		{FALSE, "false"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.wantType || tok.Literal != tt.wantLit {
			t.Fatalf("token %d: got (%s %q), want (%s %q)", i, tok.Type.Name(), tok.Literal, tt.wantType.Name(), tt.wantLit)
		}
	}
}

func TestNextToken_IdentVsConst(t *testing.T) {
	l := New("foo Bar _baz")
	if tok := l.Next(); tok.Type != IDENT {
		t.Fatalf("foo: got %s", tok.Type.Name())
	}
	if tok := l.Next(); tok.Type != CONST {
		t.Fatalf("Bar: got %s", tok.Type.Name())
	}
	if tok := l.Next(); tok.Type != IDENT {
		t.Fatalf("_baz: got %s", tok.Type.Name())
	}
}

func TestNextToken_Symbol(t *testing.T) {
	l := New(":ok")
	tok := l.Next()
	if tok.Type != SYMBOL || tok.Literal != "ok" {
		t.Fatalf("got (%s %q)", tok.Type.Name(), tok.Literal)
	}
}

func TestNextToken_SplatStar(t *testing.T) {
	l := New("[1, *rest]")
	var got []TokenType
	for {
		tok := l.Next()
		got = append(got, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{LBRACKET, INT, COMMA, STAR, IDENT, RBRACKET, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i].Name(), want[i].Name())
		}
	}
}

func TestNextToken_Numbers(t *testing.T) {
	l := New("1 1.5 2e10")
	if tok := l.Next(); tok.Type != INT || tok.Literal != "1" {
		t.Fatalf("got %v", tok)
	}
	if tok := l.Next(); tok.Type != FLOAT || tok.Literal != "1.5" {
		t.Fatalf("got %v", tok)
	}
	if tok := l.Next(); tok.Type != FLOAT || tok.Literal != "2e10" {
		t.Fatalf("got %v", tok)
	}
}

func TestPositionsAreRuneCounted(t *testing.T) {
	l := New("x \nΔ")
	l.Next() // x
	tok := l.Next() // newline
	if tok.Pos.Line != 1 {
		t.Fatalf("newline line: got %d", tok.Pos.Line)
	}
	tok = l.Next() // Δ, should be on line 2 column 1
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("got %v", tok.Pos)
	}
}

func TestSaveRestore(t *testing.T) {
	l := New("a b c")
	l.Next() // a
	save := l.Save()
	l.Next() // b
	l.Restore(save)
	tok := l.Next()
	if tok.Literal != "b" {
		t.Fatalf("restore failed: got %q", tok.Literal)
	}
}

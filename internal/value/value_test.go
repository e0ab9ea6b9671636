package value

import "testing"

func TestNumericCrossEquality(t *testing.T) {
	if !Equal(Int(1), Float(1.0)) {
		t.Fatal("1 == 1.0 should be true")
	}
	if Equal(Int(1), Float(1.1)) {
		t.Fatal("1 == 1.1 should be false")
	}
	if !Equal(Float(2.0), Int(2)) {
		t.Fatal("2.0 == 2 should be true (symmetric)")
	}
}

func TestCrossVariantEqualityIsFalse(t *testing.T) {
	if Equal(NilValue, Bool(false)) {
		t.Fatal("nil == false should be false")
	}
	if Equal(Str("1"), Int(1)) {
		t.Fatal("\"1\" == 1 should be false")
	}
}

func TestTruthiness(t *testing.T) {
	falsey := []Value{NilValue, Bool(false)}
	for _, v := range falsey {
		if Truthy(v) {
			t.Fatalf("%v should be falsey", v)
		}
	}
	truthy := []Value{Bool(true), Int(0), Float(0.0), Str(""), NewList(nil), Symbol("x")}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Fatalf("%v should be truthy", v)
		}
	}
}

func TestIntDivisionTruncatesTowardZero(t *testing.T) {
	v, err := Div(Int(-7), Int(2))
	if err != nil {
		t.Fatal(err)
	}
	if v != Int(-3) {
		t.Fatalf("got %v, want -3", v)
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := Div(Int(1), Int(0)); err != ErrDivisionByZero {
		t.Fatalf("got %v, want ErrDivisionByZero", err)
	}
}

func TestStringAddStringifiesRHS(t *testing.T) {
	v, err := Add(Str("x="), Int(5))
	if err != nil {
		t.Fatal(err)
	}
	if v != Str("x=5") {
		t.Fatalf("got %v", v)
	}
}

func TestStringMulNegativeYieldsEmpty(t *testing.T) {
	v, err := Mul(Str("ab"), Int(-1))
	if err != nil {
		t.Fatal(err)
	}
	if v != Str("") {
		t.Fatalf("got %q", v)
	}
}

func TestUnsupportedOperationMessage(t *testing.T) {
	_, err := Add(Bool(true), Int(1))
	if err == nil {
		t.Fatal("expected error")
	}
	want := "+ is not supported for Boolean and Integer"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestListReferenceEquality(t *testing.T) {
	l := NewList([]Value{Int(1)})
	var v Value = l
	if v.(*List) != l {
		t.Fatal("expected the same pointer back")
	}
}

package scope

import (
	"testing"

	"github.com/stockerssld/myst/internal/value"
)

func TestPermissiveChainsToParent(t *testing.T) {
	root := New(false)
	root.Set("a", value.Int(1), true)
	child := root.NewChild(false)
	v, ok := child.Get("a")
	if !ok || v != value.Int(1) {
		t.Fatalf("expected to see parent binding, got %v %v", v, ok)
	}
}

func TestRestrictiveDoesNotChain(t *testing.T) {
	root := New(false)
	root.Set("a", value.Int(1), true)
	child := root.NewChild(true)
	if _, ok := child.Get("a"); ok {
		t.Fatal("restrictive scope should not see parent binding")
	}
}

func TestSetWithoutMakeNewMutatesEnclosingFrame(t *testing.T) {
	root := New(false)
	root.Set("a", value.Int(1), true)
	child := root.NewChild(false)
	child.Set("a", value.Int(2), false)
	v, _ := root.Get("a")
	if v != value.Int(2) {
		t.Fatalf("expected root's a to be mutated to 2, got %v", v)
	}
	if _, ok := child.GetLocal("a"); ok {
		t.Fatal("child frame should not have gained its own binding")
	}
}

func TestSetWithMakeNewAlwaysCreatesLocally(t *testing.T) {
	root := New(false)
	root.Set("a", value.Int(1), true)
	child := root.NewChild(false)
	child.Set("a", value.Int(2), true)
	if v, _ := root.Get("a"); v != value.Int(1) {
		t.Fatalf("root's a should be unchanged, got %v", v)
	}
	if v, _ := child.GetLocal("a"); v != value.Int(2) {
		t.Fatalf("child's a should be 2, got %v", v)
	}
}

func TestTablePushPopAndUnderflow(t *testing.T) {
	tbl := NewTable()
	if tbl.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", tbl.Depth())
	}
	tbl.Push(true)
	if tbl.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", tbl.Depth())
	}
	if err := tbl.Pop(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Pop(); err != ErrScopeUnderflow {
		t.Fatalf("expected ErrScopeUnderflow, got %v", err)
	}
}

func TestFunctionTableFirstDefinitionWins(t *testing.T) {
	ft := NewFunctionTable()
	ft.Define("f", &value.Functor{})
	second := &value.Functor{}
	ft.Define("f", second)
	got, ok := ft.Lookup("f")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if got == second {
		t.Fatal("lookup should return the first definition, not the second")
	}
}

package myst

import (
	"bytes"
	"testing"
)

func TestEngineEvalReturnsLastValue(t *testing.T) {
	engine := New()
	result, err := engine.Eval("<eval>", "1 + 2")
	if err != nil {
		t.Fatalf("Eval returned unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected Success, got %#v", result)
	}
	if result.Value.String() != "3" {
		t.Fatalf("expected value 3, got %s", result.Value.String())
	}
}

func TestEngineParseReportsAllSyntaxErrors(t *testing.T) {
	engine := New()
	_, err := engine.Parse("<eval>", "1 +\n2 *")
	if err == nil {
		t.Fatal("expected a ParseError")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(pe.Errors) != 2 {
		t.Fatalf("expected 2 syntax errors, got %d: %v", len(pe.Errors), pe.Errors)
	}
}

func TestEngineRunCapturesRuntimeError(t *testing.T) {
	engine := New()
	program, err := engine.Parse("<eval>", "undefined_name")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var errBuf bytes.Buffer
	result, err := engine.Run(program, true, &errBuf)
	if err != nil {
		t.Fatalf("captured-mode Run should not return an error, got %v", err)
	}
	if result.Success {
		t.Fatal("expected Success=false for an undefined-variable runtime error")
	}
	if errBuf.Len() == 0 {
		t.Fatal("expected the captured error to be written to errSink")
	}
}

func TestEngineRunPropagatesRuntimeErrorWhenNotCaptured(t *testing.T) {
	engine := New()
	program, err := engine.Parse("<eval>", "undefined_name")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = engine.Run(program, false, nil)
	if err == nil {
		t.Fatal("expected a propagated runtime error")
	}
}

func TestEngineEvalWrapsCapturedErrorAsRuntimeError(t *testing.T) {
	engine := New()
	_, err := engine.Eval("<eval>", "undefined_name")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func TestEngineCompileIsParse(t *testing.T) {
	engine := New()
	program, err := engine.Compile("<eval>", "a = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := engine.Run(program, false, nil)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if result.Value.String() != "1" {
		t.Fatalf("expected value 1, got %s", result.Value.String())
	}
}

func TestWithOutputOption(t *testing.T) {
	var out bytes.Buffer
	engine := New(WithOutput(&out))
	if _, err := engine.Eval("<eval>", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Nothing in this grammar writes to out yet (no print built-in is
	// wired), so this only confirms the option is accepted and doesn't
	// break evaluation.
}

func TestWithShortCircuitDisabled(t *testing.T) {
	engine := New(WithShortCircuit(false))
	// With short-circuiting off, the right operand of && is always
	// evaluated, so referencing an undefined name there must raise even
	// though the left side is falsy.
	_, err := engine.Eval("<eval>", "false && undefined_name")
	if err == nil {
		t.Fatal("expected an error since the right operand is always evaluated")
	}
}

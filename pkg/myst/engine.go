// Package myst embeds the myst execution core behind a small, stable
// surface so a host program can parse and run scripts without reaching
// into internal/lexer, internal/parser, or internal/interp directly.
//
// Grounded on the teacher's pkg/dwscript Engine wrapper, trimmed to the
// contract spec.md §6.3 actually names: no FFI/host-function
// registration, no compile-mode selection, no bytecode chunk — this
// core has none of those. What a host embeds is exactly Parse, Eval,
// and Compile-then-Run.
package myst

import (
	"bytes"
	"io"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/interp"
	"github.com/stockerssld/myst/internal/parser"
	"github.com/stockerssld/myst/internal/value"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput redirects the output a running script's print-style
// built-ins write to. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithShortCircuit controls && / || evaluation (spec §9 open question,
// decided in SPEC_FULL.md: short-circuit by default).
func WithShortCircuit(enabled bool) Option {
	return func(e *Engine) { e.shortCircuit = enabled }
}

// Engine is a reusable front end over one interpreter instance. Nothing
// about a compiled Program is shared across Engines or goroutines
// (spec §5: interpreter state belongs to a single evaluation).
type Engine struct {
	out          io.Writer
	shortCircuit bool
}

// New creates an Engine with the given options applied over the
// package defaults (no output, short-circuiting enabled).
func New(opts ...Option) *Engine {
	e := &Engine{out: io.Discard, shortCircuit: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Program is a parsed, not-yet-run script: the AST plus the source text
// and file name its error messages reference.
type Program struct {
	file   string
	source string
	root   *ast.ExpressionList
}

// Result is the outcome of running a Program.
type Result struct {
	// Value is the last expression's value, or nil when a runtime error
	// was captured rather than propagated.
	Value value.Value
	// Success reports whether the run completed without a captured
	// runtime error. Parse errors are always returned as an error from
	// Compile/Eval, never folded into Result.
	Success bool
}

// Parse lexes and parses source into a Program without running it.
// Every syntax error found is returned at once as a ParseError,
// mirroring the parser's own multi-error accumulation.
func (e *Engine) Parse(file, source string) (*Program, error) {
	p := parser.New(file, source)
	root, errs := p.Parse()
	if len(errs) > 0 {
		return nil, &ParseError{Errors: errs}
	}
	return &Program{file: file, source: source, root: root}, nil
}

// Compile is an alias for Parse: this core has no bytecode or other
// intermediate representation to produce, so compiling and parsing are
// the same step (spec §6.4: purely in-memory, nothing persisted).
func (e *Engine) Compile(file, source string) (*Program, error) {
	return e.Parse(file, source)
}

// Run executes a previously parsed Program against a fresh interpreter
// instance. When captureErrors is true, a runtime error is formatted to
// errSink and Run returns a Result with Success=false instead of an
// error; when false, the error propagates to the caller.
func (e *Engine) Run(program *Program, captureErrors bool, errSink io.Writer) (*Result, error) {
	it := interp.New(e.out)
	it.ShortCircuit = e.shortCircuit

	v, err := it.Run(program.root, program.file, program.source, captureErrors, errSink)
	if err != nil {
		return nil, err
	}
	// it.Run returns (nil, nil) exactly when captureErrors caught a
	// runtime error; every successful run pushes a real Value (a Nil
	// result is value.NilValue, not a Go nil interface).
	return &Result{Value: v, Success: v != nil}, nil
}

// Eval parses and runs source in one step, capturing runtime errors to
// an internal buffer rather than propagating them; when Success is
// false the formatted output is returned as the message of a
// *RuntimeError alongside the Result. This is the convenience entry point a host
// embedding one-off scripts (rather than a reusable Program) reaches
// for first.
func (e *Engine) Eval(file, source string) (*Result, error) {
	program, err := e.Parse(file, source)
	if err != nil {
		return nil, err
	}
	var errBuf bytes.Buffer
	result, err := e.Run(program, true, &errBuf)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, &RuntimeError{Message: errBuf.String()}
	}
	return result, nil
}

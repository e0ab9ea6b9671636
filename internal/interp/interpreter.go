// Package interp implements the execution core of spec.md: the
// operand-stack-driven AST visitor, the expression evaluator, the
// destructuring match engine, and function dispatch, all wired
// together by the Interpreter type.
package interp

import (
	"fmt"
	"io"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/scope"
	"github.com/stockerssld/myst/internal/value"
)

// Interpreter owns the symbol table, function table, and kernel type
// registry for a single evaluation (spec §5: these are owned by the
// interpreter instance; nothing crosses instances, nothing is
// shared across goroutines).
type Interpreter struct {
	Table  *scope.Table
	Funcs  *scope.FunctionTable
	Kernel *Kernel

	ops      stack
	file     string
	source   string
	builtins map[string]builtinFunc

	// ShortCircuit controls && / || evaluation (spec §9 open
	// question, decided in SPEC_FULL.md: true).
	ShortCircuit bool

	out io.Writer
}

// New creates an Interpreter with a fresh global scope seeded with the
// kernel's canonical types bound under their type-name Consts (so a
// script can write `Integer =: ...` or pass `String` as a pattern).
func New(out io.Writer) *Interpreter {
	it := &Interpreter{
		Table:        scope.NewTable(),
		Funcs:        scope.NewFunctionTable(),
		Kernel:       NewKernel(),
		ShortCircuit: true,
		out:          out,
	}
	for _, name := range canonicalTypeNames {
		t, _ := it.Kernel.Lookup(name)
		it.Table.Top().Set(name, t, true)
	}
	registerBuiltins(it)
	return it
}

// Output returns the writer user code's print-style built-ins write to.
func (it *Interpreter) Output() io.Writer { return it.out }

// Run implements spec §6.3: evaluate program (an *ast.Block or
// *ast.ExpressionList root) against source text. When captureErrors is
// true, a raised error is formatted to errSink and Run returns (nil,
// nil); when false, the error propagates to the caller as the
// returned error.
func (it *Interpreter) Run(program ast.Expression, file, source string, captureErrors bool, errSink io.Writer) (value.Value, error) {
	it.file = file
	it.source = source

	v, err := it.Eval(program)
	if err == nil {
		return v, nil
	}
	if !captureErrors {
		return nil, err
	}
	if ee, ok := err.(*errors.EvaluatorError); ok {
		fmt.Fprintln(errSink, ee.Format(false))
	} else {
		fmt.Fprintln(errSink, err.Error())
	}
	return nil, nil
}

// Eval dispatches node through the visitor (dispatch.go), which pushes
// its result onto the operand stack, then pops and returns that result,
// leaving the stack as it was. This is the entry point both Run and
// nested evaluation use.
func (it *Interpreter) Eval(node ast.Node) (value.Value, error) {
	depth := it.ops.len()
	if err := it.visit(node); err != nil {
		return nil, err
	}
	if it.ops.len() != depth+1 {
		return nil, it.errf(node, errors.UnsupportedNode, "internal error: expression left %d values on the stack, expected 1", it.ops.len()-depth)
	}
	return it.ops.pop(), nil
}

// pushScope pushes a new frame and returns a function that pops it.
// Every call site defers the returned function immediately, so the
// frame is popped on every exit path including error propagation
// (spec §5's scoped-acquisition requirement).
func (it *Interpreter) pushScope(restrictive bool) func() {
	it.Table.Push(restrictive)
	return func() {
		if err := it.Table.Pop(); err != nil {
			panic(err) // scope discipline bug, not a user-facing error
		}
	}
}

func (it *Interpreter) errf(node ast.Node, kind errors.Kind, format string, args ...any) error {
	return errors.New(kind, node.Loc(), it.source, format, args...)
}

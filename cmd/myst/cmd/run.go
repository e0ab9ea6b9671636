package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/stockerssld/myst/internal/config"
	"github.com/stockerssld/myst/internal/errors"
	"github.com/stockerssld/myst/internal/interp"
	"github.com/stockerssld/myst/internal/parser"
)

var (
	evalExpr      string
	dumpAST       bool
	trace         bool
	captureErrors bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a myst file or expression",
	Long: `Execute a myst program from a file or inline expression.

Examples:
  # Run a script file
  myst run script.myst

  # Evaluate an inline expression
  myst run -e "1 + 2"

  # Run with AST dump (for debugging)
  myst run --dump-ast script.myst

  # Run with execution trace
  myst run --trace script.myst`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
	runCmd.Flags().BoolVar(&captureErrors, "capture-errors", true, "report runtime errors instead of propagating them (default: true)")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	var cfg config.Config
	if filename != "<eval>" {
		cfg, err = config.FindAndLoad(filepath.Dir(filename))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	p := parser.New(filename, input)
	program, errs := p.Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Println("AST:")
		dumpASTNode(program, 0)
		fmt.Println()
	}

	if !cmd.Flags().Changed("trace") && cfg.Trace {
		trace = true
	}
	if trace {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", filename)
	}

	wantCapture := cfg.CaptureErrors
	if cmd.Flags().Changed("capture-errors") {
		wantCapture = captureErrors
	}

	it := interp.New(os.Stdout)
	it.ShortCircuit = cfg.ShortCircuit

	errSink := &trackingWriter{w: os.Stderr}
	result, err := it.Run(program, filename, input, wantCapture, errSink)
	if err != nil {
		if ee, ok := err.(*errors.EvaluatorError); ok {
			fmt.Fprintln(os.Stderr, ee.Format(useColor))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed")
	}
	if errSink.wrote {
		return fmt.Errorf("execution failed")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Result: %s\n", result.String())
	}

	return nil
}

// trackingWriter records whether anything was written to it, so
// runScript can tell a captured runtime error apart from a clean run
// without inspecting the interpreter's result value (a captured error
// always leaves Run's result nil, but so would a script that legitimately
// evaluates to nothing, so the run path checks this instead).
type trackingWriter struct {
	w     io.Writer
	wrote bool
}

func (w *trackingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		w.wrote = true
	}
	return w.w.Write(p)
}

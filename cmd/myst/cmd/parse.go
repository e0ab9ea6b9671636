package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse myst source and display the AST",
	Long: `Parse myst source code and print its structure.

By default prints the compact String() form of the parsed expression
list; --dump-ast prints the full tree, one node per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	p := parser.New(filename, input)
	program, errs := p.Parse()
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Parser errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if parseDumpAST {
		fmt.Println("AST:")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.ExpressionList:
		fmt.Printf("%sExpressionList (%d children)\n", pad, len(n.Children))
		for _, c := range n.Children {
			dumpASTNode(c, indent+1)
		}
	case *ast.Block:
		fmt.Printf("%sBlock (%d children)\n", pad, len(n.Children))
		for _, c := range n.Children {
			dumpASTNode(c, indent+1)
		}
	case *ast.NilLiteral:
		fmt.Printf("%sNilLiteral\n", pad)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %t\n", pad, n.Value)
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", pad, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.SymbolLiteral:
		fmt.Printf("%sSymbolLiteral: :%s\n", pad, n.Value)
	case *ast.ListLiteral:
		fmt.Printf("%sListLiteral (%d elements)\n", pad, len(n.Elements))
		for _, e := range n.Elements {
			dumpASTNode(e, indent+1)
		}
	case *ast.MapLiteral:
		fmt.Printf("%sMapLiteral (%d entries)\n", pad, len(n.Entries))
		for _, e := range n.Entries {
			fmt.Printf("%s  %s:\n", pad, e.Key)
			dumpASTNode(e.Value, indent+2)
		}
	case *ast.VariableReference:
		fmt.Printf("%sVariableReference: %s\n", pad, n.Name)
	case *ast.ConstReference:
		fmt.Printf("%sConstReference: %s\n", pad, n.Name)
	case *ast.SimpleAssignment:
		fmt.Printf("%sSimpleAssignment: %s\n", pad, n.Target)
		dumpASTNode(n.Value, indent+1)
	case *ast.MatchAssign:
		fmt.Printf("%sMatchAssign\n", pad)
		fmt.Printf("%s  Pattern:\n", pad)
		dumpASTNode(n.Pattern, indent+2)
		fmt.Printf("%s  Value:\n", pad)
		dumpASTNode(n.Value, indent+2)
	case *ast.LogicalExpression:
		op := "&&"
		if n.Op == ast.LogicalOr {
			op = "||"
		}
		fmt.Printf("%sLogicalExpression (%s)\n", pad, op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.EqualityExpression:
		fmt.Printf("%sEqualityExpression\n", pad)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.RelationalExpression:
		fmt.Printf("%sRelationalExpression\n", pad)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression\n", pad)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryExpression:
		fmt.Printf("%sUnaryExpression\n", pad)
		dumpASTNode(n.Operand, indent+1)
	case *ast.InterpolationExpression:
		fmt.Printf("%sInterpolationExpression\n", pad)
		dumpASTNode(n.Inner, indent+1)
	case *ast.FunctionDefinition:
		fmt.Printf("%sFunctionDefinition: %s (%d params)\n", pad, n.Name, len(n.Params))
		dumpASTNode(n.Body, indent+1)
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall: %s (%d args)\n", pad, n.Callee, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.LiteralPattern:
		fmt.Printf("%sLiteralPattern: %s\n", pad, n.Literal)
	case *ast.IdentifierPattern:
		fmt.Printf("%sIdentifierPattern: %s (discardable=%t)\n", pad, n.Name, n.Discardable)
	case *ast.ConstPattern:
		fmt.Printf("%sConstPattern: %s\n", pad, n.Name)
	case *ast.ListPattern:
		fmt.Printf("%sListPattern (%d elements, splat=%d)\n", pad, len(n.Elements), n.SplatIndex)
		for _, e := range n.Elements {
			dumpASTNode(e, indent+1)
		}
	case *ast.SplatPattern:
		fmt.Printf("%sSplatPattern: *%s\n", pad, n.Name)
	case *ast.MapPattern:
		fmt.Printf("%sMapPattern (%d entries)\n", pad, len(n.Entries))
		for _, e := range n.Entries {
			fmt.Printf("%s  %s:\n", pad, e.Key)
			dumpASTNode(e.Pattern, indent+2)
		}
	default:
		fmt.Printf("%s%T: %s\n", pad, node, node)
	}
}

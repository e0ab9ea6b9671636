// Package parser implements a recursive-descent / Pratt expression
// parser that turns a myst token stream into the internal/ast node
// shapes the evaluator consumes (spec §6.1's AST contract). Precedence
// climbs from assignment/match down to primary expressions; pattern
// parsing (for `=:` targets) is a parallel grammar that shares the
// same cursor.
package parser

import (
	"strconv"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/lexer"
)

// Precedence levels, lowest to highest. Assignment and match are
// handled outside this table (see parseStatement) since their targets
// are restricted grammars, not general expressions.
const (
	_ int = iota
	LOWEST
	LOGIC_OR
	LOGIC_AND
	EQUALITY
	RELATIONAL
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	CALL
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:      LOGIC_OR,
	lexer.AND:     LOGIC_AND,
	lexer.EQ:      EQUALITY,
	lexer.NE:      EQUALITY,
	lexer.LT:      RELATIONAL,
	lexer.LE:      RELATIONAL,
	lexer.GT:      RELATIONAL,
	lexer.GE:      RELATIONAL,
	lexer.PLUS:    ADDITIVE,
	lexer.MINUS:   ADDITIVE,
	lexer.STAR:    MULTIPLICATIVE,
	lexer.SLASH:   MULTIPLICATIVE,
	lexer.PERCENT: MULTIPLICATIVE,
	lexer.LPAREN:  CALL,
}

type prefixParseFn func() (ast.Expression, error)
type infixParseFn func(ast.Expression) (ast.Expression, error)

// Parser turns tokens from a single cursor into AST nodes, accumulating
// syntax errors rather than panicking, so a caller can report every
// error found in a source file in one pass (spec §6.3's capture_errors
// mode relies on this at the evaluator layer; the parser mirrors it at
// the syntax layer).
type Parser struct {
	file   string
	cursor *Cursor
	errors []*SyntaxError

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over source text, tagging every node's Location
// with file.
func New(file, source string) *Parser {
	p := &Parser{file: file, cursor: NewCursor(lexer.New(source))}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.INT:      p.parseIntegerLiteral,
		lexer.FLOAT:    p.parseFloatLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.SYMBOL:   p.parseSymbolLiteral,
		lexer.TRUE:     p.parseBooleanLiteral,
		lexer.FALSE:    p.parseBooleanLiteral,
		lexer.NIL:      p.parseNilLiteral,
		lexer.IDENT:    p.parseIdentifier,
		lexer.CONST:    p.parseConst,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.LBRACKET: p.parseListLiteral,
		lexer.LBRACE:   p.parseMapLiteral,
		lexer.BANG:     p.parseUnaryExpression,
		lexer.MINUS:    p.parseUnaryExpression,
		lexer.DEF:      p.parseFunctionDefinition,
	}

	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.OR:      p.parseLogicalExpression,
		lexer.AND:     p.parseLogicalExpression,
		lexer.EQ:      p.parseEqualityExpression,
		lexer.NE:      p.parseEqualityExpression,
		lexer.LT:      p.parseRelationalExpression,
		lexer.LE:      p.parseRelationalExpression,
		lexer.GT:      p.parseRelationalExpression,
		lexer.GE:      p.parseRelationalExpression,
		lexer.PLUS:    p.parseBinaryExpression,
		lexer.MINUS:   p.parseBinaryExpression,
		lexer.STAR:    p.parseBinaryExpression,
		lexer.SLASH:   p.parseBinaryExpression,
		lexer.PERCENT: p.parseBinaryExpression,
		lexer.LPAREN:  p.parseCallExpression,
	}

	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*SyntaxError { return p.errors }

func (p *Parser) advance() { p.cursor = p.cursor.Advance() }

func (p *Parser) loc() ast.Location { return ast.FromPos(p.file, p.cursor.Current().Pos) }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.cursor.Current().Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) expect(t lexer.TokenType, code string) error {
	if !p.cursor.Is(t) {
		return newSyntaxError(p.cursor.Current().Pos, code, "expected %s, got %s", t.Name(), p.cursor.Current().Type.Name())
	}
	p.advance()
	return nil
}

// skipSeparators consumes any run of NEWLINE/SEMI tokens, which are
// statement separators everywhere except inside bracketed expressions.
func (p *Parser) skipSeparators() {
	for p.cursor.Is(lexer.NEWLINE) || p.cursor.Is(lexer.SEMI) {
		p.advance()
	}
}

// Parse consumes the entire token stream and returns the program as an
// ExpressionList (spec §6.1's top-level root), plus every syntax error
// accumulated along the way. Parsing continues past an error by
// skipping to the next separator, so multiple mistakes in one source
// file are all reported (mirrors the teacher's panic-mode recovery).
func (p *Parser) Parse() (*ast.ExpressionList, []*SyntaxError) {
	start := p.loc()
	var children []ast.Expression

	p.skipSeparators()
	for !p.cursor.Is(lexer.EOF) {
		expr, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, asSyntaxError(err))
			p.synchronize()
		} else if expr != nil {
			children = append(children, expr)
		}
		p.skipSeparators()
	}

	return ast.NewExpressionList(start, children), p.errors
}

// synchronize advances past tokens until the next statement separator
// or EOF, so a single malformed statement does not cascade into
// spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.cursor.Is(lexer.NEWLINE) && !p.cursor.Is(lexer.SEMI) && !p.cursor.Is(lexer.EOF) {
		p.advance()
	}
}

func asSyntaxError(err error) *SyntaxError {
	if se, ok := err.(*SyntaxError); ok {
		return se
	}
	return &SyntaxError{Code: ErrUnexpectedToken, Message: err.Error()}
}

// parseStatement parses one top-level or block-level construct: either
// a pattern-match assignment (`pattern =: value`) or an ordinary
// expression (which itself may turn out to be a SimpleAssignment, see
// parseExpression's post-primary check).
func (p *Parser) parseStatement() (ast.Expression, error) {
	if pat, ok := p.tryParsePattern(); ok && p.cursor.Is(lexer.MATCH) {
		loc := p.loc()
		p.advance()
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return ast.NewMatchAssign(loc, pat, value), nil
	}
	return p.parseExpression(LOWEST)
}

// parseExpression is the Pratt loop: parse a prefix expression, then
// repeatedly fold in infix operators whose precedence exceeds
// minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cursor.Current().Type]
	if !ok {
		return nil, newSyntaxError(p.cursor.Current().Pos, ErrNoPrefixParse, "unexpected token %s", p.cursor.Current().Type.Name())
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	// A plain identifier or constant immediately followed by `=` is a
	// SimpleAssignment (spec §4.3): the target is a bare name, not a
	// general expression, so this check sits outside the Pratt table.
	if p.cursor.Is(lexer.ASSIGN) {
		if target, ok := assignTarget(left); ok {
			loc := p.loc()
			p.advance()
			value, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			return ast.NewSimpleAssignment(loc, target, value), nil
		}
		return nil, newSyntaxError(p.cursor.Current().Pos, ErrInvalidAssignment, "assignment target must be an identifier or constant")
	}

	for !p.cursor.Is(lexer.NEWLINE) && !p.cursor.Is(lexer.SEMI) && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.cursor.Current().Type]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// assignTarget reports whether expr is a bare name reference suitable
// as a SimpleAssignment target, returning that name.
func assignTarget(expr ast.Expression) (string, bool) {
	switch e := expr.(type) {
	case *ast.VariableReference:
		return e.Name, true
	case *ast.ConstReference:
		return e.Name, true
	default:
		return "", false
	}
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	tok := p.cursor.Current()
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, newSyntaxError(tok.Pos, ErrUnexpectedToken, "invalid integer literal %q", tok.Literal)
	}
	loc := p.loc()
	p.advance()
	return ast.NewIntegerLiteral(loc, v), nil
}

func (p *Parser) parseFloatLiteral() (ast.Expression, error) {
	tok := p.cursor.Current()
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, newSyntaxError(tok.Pos, ErrUnexpectedToken, "invalid float literal %q", tok.Literal)
	}
	loc := p.loc()
	p.advance()
	return ast.NewFloatLiteral(loc, v), nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	tok := p.cursor.Current()
	loc := p.loc()
	p.advance()
	return ast.NewStringLiteral(loc, tok.Literal), nil
}

func (p *Parser) parseSymbolLiteral() (ast.Expression, error) {
	tok := p.cursor.Current()
	loc := p.loc()
	p.advance()
	return ast.NewSymbolLiteral(loc, tok.Literal), nil
}

func (p *Parser) parseBooleanLiteral() (ast.Expression, error) {
	tok := p.cursor.Current()
	loc := p.loc()
	p.advance()
	return ast.NewBooleanLiteral(loc, tok.Type == lexer.TRUE), nil
}

func (p *Parser) parseNilLiteral() (ast.Expression, error) {
	loc := p.loc()
	p.advance()
	return ast.NewNilLiteral(loc), nil
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	tok := p.cursor.Current()
	loc := p.loc()
	p.advance()
	return ast.NewVariableReference(loc, tok.Literal), nil
}

func (p *Parser) parseConst() (ast.Expression, error) {
	tok := p.cursor.Current()
	loc := p.loc()
	p.advance()
	return ast.NewConstReference(loc, tok.Literal), nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.advance() // consume '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, ErrMissingRParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	loc := p.loc()
	p.advance() // consume '['
	var elems []ast.Expression
	for !p.cursor.Is(lexer.RBRACKET) {
		e, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.cursor.Is(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACKET, ErrMissingRBracket); err != nil {
		return nil, err
	}
	return ast.NewListLiteral(loc, elems), nil
}

func (p *Parser) parseMapLiteral() (ast.Expression, error) {
	loc := p.loc()
	p.advance() // consume '{'
	var entries []ast.MapEntry
	for !p.cursor.Is(lexer.RBRACE) {
		key, err := p.parseMapKey()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, ErrUnexpectedToken); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
		if p.cursor.Is(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACE, ErrMissingRBrace); err != nil {
		return nil, err
	}
	return ast.NewMapLiteral(loc, entries), nil
}

// parseMapKey accepts an identifier, constant, or string token as the
// static key text of a map entry (`{name: v}` or `{"name": v}`).
func (p *Parser) parseMapKey() (string, error) {
	tok := p.cursor.Current()
	switch tok.Type {
	case lexer.IDENT, lexer.CONST, lexer.STRING:
		p.advance()
		return tok.Literal, nil
	default:
		return "", newSyntaxError(tok.Pos, ErrUnexpectedToken, "expected map key, got %s", tok.Type.Name())
	}
}

func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	tok := p.cursor.Current()
	op := ast.UnaryNeg
	if tok.Type == lexer.BANG {
		op = ast.UnaryNot
	}
	loc := p.loc()
	p.advance()
	operand, err := p.parseExpression(UNARY)
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpression(loc, op, operand), nil
}

func (p *Parser) parseLogicalExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cursor.Current()
	op := ast.LogicalAnd
	if tok.Type == lexer.OR {
		op = ast.LogicalOr
	}
	loc := p.loc()
	prec := p.peekPrecedence()
	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return ast.NewLogicalExpression(loc, op, left, right), nil
}

func (p *Parser) parseEqualityExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cursor.Current()
	op := ast.EqEqual
	if tok.Type == lexer.NE {
		op = ast.EqNotEqual
	}
	loc := p.loc()
	prec := p.peekPrecedence()
	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return ast.NewEqualityExpression(loc, op, left, right), nil
}

var relOps = map[lexer.TokenType]ast.RelationalOp{
	lexer.LT: ast.RelLess, lexer.LE: ast.RelLessEqual,
	lexer.GT: ast.RelGreater, lexer.GE: ast.RelGreaterEqual,
}

func (p *Parser) parseRelationalExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cursor.Current()
	op := relOps[tok.Type]
	loc := p.loc()
	prec := p.peekPrecedence()
	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return ast.NewRelationalExpression(loc, op, left, right), nil
}

var binOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.PLUS: ast.BinAdd, lexer.MINUS: ast.BinSub,
	lexer.STAR: ast.BinMul, lexer.SLASH: ast.BinDiv, lexer.PERCENT: ast.BinMod,
}

func (p *Parser) parseBinaryExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cursor.Current()
	op := binOps[tok.Type]
	loc := p.loc()
	prec := p.peekPrecedence()
	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpression(loc, op, left, right), nil
}

func (p *Parser) parseCallExpression(callee ast.Expression) (ast.Expression, error) {
	ref, ok := callee.(*ast.VariableReference)
	if !ok {
		return nil, newSyntaxError(p.cursor.Current().Pos, ErrUnexpectedToken, "call target must be a plain identifier")
	}
	loc := p.loc()
	p.advance() // consume '('
	var args []ast.Expression
	for !p.cursor.Is(lexer.RPAREN) {
		a, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.cursor.Is(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN, ErrMissingRParen); err != nil {
		return nil, err
	}
	return ast.NewFunctionCall(loc, ref.Name, args), nil
}

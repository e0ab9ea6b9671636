package parser

import (
	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/lexer"
)

// parseFunctionDefinition implements `def name(p1, p2, *rest) ... end`
// (spec §4.3's FunctionDefinition node): a name, a parenthesized
// parameter list with at most a trailing splat, and a Block body
// terminated by `end`.
func (p *Parser) parseFunctionDefinition() (ast.Expression, error) {
	loc := p.loc()
	p.advance() // consume 'def'

	nameTok := p.cursor.Current()
	if err := p.expect(lexer.IDENT, ErrUnexpectedToken); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.LPAREN, ErrUnexpectedToken); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, ErrMissingRParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlockUntil(lexer.END)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.END, ErrMissingEnd); err != nil {
		return nil, err
	}

	return ast.NewFunctionDefinition(loc, nameTok.Literal, params, body), nil
}

// parseParamList parses a comma-separated formal parameter list; only
// the last parameter may be a splat (`*name`), matching the arity rule
// of spec §7's ArityError note.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	var params []ast.Param
	for !p.cursor.Is(lexer.RPAREN) {
		splat := false
		if p.cursor.Is(lexer.STAR) {
			splat = true
			p.advance()
		}
		nameTok := p.cursor.Current()
		if err := p.expect(lexer.IDENT, ErrUnexpectedToken); err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: nameTok.Literal, Splat: splat})
		if splat && p.cursor.Is(lexer.COMMA) {
			return nil, newSyntaxError(p.cursor.Current().Pos, ErrUnexpectedToken, "splat parameter *%s must be the last parameter", nameTok.Literal)
		}
		if p.cursor.Is(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return params, nil
}

// parseBlockUntil parses a sequence of statements up to (but not
// consuming) a token of type stop, wrapping them in a Block (spec
// §3.4: all but the last child's result is discarded).
func (p *Parser) parseBlockUntil(stop lexer.TokenType) (*ast.Block, error) {
	loc := p.loc()
	var children []ast.Expression

	p.skipSeparators()
	for !p.cursor.Is(stop) && !p.cursor.Is(lexer.EOF) {
		expr, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
		p.skipSeparators()
	}

	return ast.NewBlock(loc, children), nil
}

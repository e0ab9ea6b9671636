package parser

import (
	"strconv"
	"strings"

	"github.com/stockerssld/myst/internal/ast"
	"github.com/stockerssld/myst/internal/lexer"
)

// patternStartTokens are the token types that can begin a pattern.
// parseStatement uses this set to decide, before committing to the
// (possibly expensive) pattern grammar, whether a leading `=:` is even
// reachable from the current token.
var patternStartTokens = map[lexer.TokenType]bool{
	lexer.NIL: true, lexer.TRUE: true, lexer.FALSE: true,
	lexer.INT: true, lexer.FLOAT: true, lexer.STRING: true, lexer.SYMBOL: true,
	lexer.IDENT: true, lexer.CONST: true,
	lexer.LBRACKET: true, lexer.LBRACE: true, lexer.LT: true,
}

// tryParsePattern speculatively parses a pattern starting at the
// cursor's current position, committing only if it is immediately
// followed by the match operator `=:`. On any failure (parse error or
// no trailing `=:`) the cursor is restored to its original position,
// so the caller can fall back to ordinary expression parsing — the
// same Mark/ResetTo backtracking discipline the teacher's cursor uses
// for speculative parses.
func (p *Parser) tryParsePattern() (ast.Pattern, bool) {
	if !patternStartTokens[p.cursor.Current().Type] {
		return nil, false
	}
	mark := p.cursor.Mark()
	pat, err := p.parsePattern()
	if err != nil || !p.cursor.Is(lexer.MATCH) {
		p.cursor = p.cursor.ResetTo(mark)
		return nil, false
	}
	return pat, true
}

// parsePattern implements spec §4.4's pattern grammar: literals,
// identifier/const/splat bindings, list and map destructuring, and the
// `<expr>` interpolation escape.
func (p *Parser) parsePattern() (ast.Pattern, error) {
	tok := p.cursor.Current()
	loc := p.loc()

	switch tok.Type {
	case lexer.NIL:
		p.advance()
		return ast.NewLiteralPattern(loc, ast.NewNilLiteral(loc)), nil
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return ast.NewLiteralPattern(loc, ast.NewBooleanLiteral(loc, tok.Type == lexer.TRUE)), nil
	case lexer.INT:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, newSyntaxError(tok.Pos, ErrInvalidPattern, "invalid integer literal %q", tok.Literal)
		}
		p.advance()
		return ast.NewLiteralPattern(loc, ast.NewIntegerLiteral(loc, v)), nil
	case lexer.FLOAT:
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, newSyntaxError(tok.Pos, ErrInvalidPattern, "invalid float literal %q", tok.Literal)
		}
		p.advance()
		return ast.NewLiteralPattern(loc, ast.NewFloatLiteral(loc, v)), nil
	case lexer.STRING:
		p.advance()
		return ast.NewLiteralPattern(loc, ast.NewStringLiteral(loc, tok.Literal)), nil
	case lexer.SYMBOL:
		p.advance()
		return ast.NewLiteralPattern(loc, ast.NewSymbolLiteral(loc, tok.Literal)), nil
	case lexer.IDENT:
		p.advance()
		return ast.NewIdentifierPattern(loc, tok.Literal, strings.HasPrefix(tok.Literal, "_")), nil
	case lexer.CONST:
		p.advance()
		return ast.NewConstPattern(loc, tok.Literal), nil
	case lexer.LBRACKET:
		return p.parseListPattern()
	case lexer.LBRACE:
		return p.parseMapPattern()
	case lexer.LT:
		return p.parseInterpolationPattern()
	default:
		return nil, newSyntaxError(tok.Pos, ErrInvalidPattern, "unexpected token %s in pattern", tok.Type.Name())
	}
}

func (p *Parser) parseInterpolationPattern() (ast.Pattern, error) {
	loc := p.loc()
	p.advance() // consume '<'
	// Parse at RELATIONAL so the closing '>' is not taken as a
	// greater-than operator.
	inner, err := p.parseExpression(RELATIONAL)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.GT, ErrUnexpectedToken); err != nil {
		return nil, err
	}
	return ast.NewInterpolationExpression(loc, inner), nil
}

// parseListPattern implements the list-pattern grammar of spec §4.4,
// including the optional single splat element `*name`.
func (p *Parser) parseListPattern() (ast.Pattern, error) {
	loc := p.loc()
	p.advance() // consume '['
	var elems []ast.Pattern
	splatIndex := -1

	for !p.cursor.Is(lexer.RBRACKET) {
		if p.cursor.Is(lexer.STAR) {
			if splatIndex >= 0 {
				return nil, newSyntaxError(p.cursor.Current().Pos, ErrInvalidPattern, "at most one splat is allowed in a list pattern")
			}
			splatLoc := p.loc()
			p.advance() // consume '*'
			nameTok := p.cursor.Current()
			if err := p.expect(lexer.IDENT, ErrInvalidPattern); err != nil {
				return nil, err
			}
			splatIndex = len(elems)
			elems = append(elems, ast.NewSplatPattern(splatLoc, nameTok.Literal))
		} else {
			sub, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			elems = append(elems, sub)
		}
		if p.cursor.Is(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	if err := p.expect(lexer.RBRACKET, ErrMissingRBracket); err != nil {
		return nil, err
	}
	return ast.NewListPattern(loc, elems, splatIndex), nil
}

// parseMapPattern implements the map-pattern grammar of spec §4.4.
func (p *Parser) parseMapPattern() (ast.Pattern, error) {
	loc := p.loc()
	p.advance() // consume '{'
	var entries []ast.MapPatternEntry

	for !p.cursor.Is(lexer.RBRACE) {
		key, err := p.parseMapKey()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, ErrUnexpectedToken); err != nil {
			return nil, err
		}
		sub, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapPatternEntry{Key: key, Pattern: sub})
		if p.cursor.Is(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	if err := p.expect(lexer.RBRACE, ErrMissingRBrace); err != nil {
		return nil, err
	}
	return ast.NewMapPattern(loc, entries), nil
}

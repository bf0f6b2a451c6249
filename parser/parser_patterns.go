package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

// parsePattern parses one match-arm pattern: wildcard, literal, tuple,
// plain identifier binding, `Type::Variant[(inner)]`, or a struct
// pattern `Type { field: pattern, ... }`.
func (p *Parser) parsePattern() (ast.Pattern, error) {
	switch p.current().Type {
	case lexer.UNDERSCORE:
		p.advance()
		return ast.WildcardPattern{}, nil
	case lexer.INT:
		tok := p.advance()
		return &ast.LiteralPattern{Lit: ast.Literal{Kind: ast.LitInt, Int: tok.IntVal}}, nil
	case lexer.FLOAT:
		tok := p.advance()
		return &ast.LiteralPattern{Lit: ast.Literal{Kind: ast.LitFloat, Flt: tok.FloatVal}}, nil
	case lexer.BOOL:
		tok := p.advance()
		return &ast.LiteralPattern{Lit: ast.Literal{Kind: ast.LitBool, Bool: tok.BoolVal}}, nil
	case lexer.STRING:
		tok := p.advance()
		return &ast.LiteralPattern{Lit: ast.Literal{Kind: ast.LitString, Str: tok.Literal}}, nil
	case lexer.CHAR:
		tok := p.advance()
		return &ast.LiteralPattern{Lit: ast.Literal{Kind: ast.LitChar, Chr: tok.CharVal}}, nil
	case lexer.LPAREN:
		p.advance()
		var elems []ast.Pattern
		for !p.at(lexer.RPAREN) {
			elem, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if p.at(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.TuplePattern{Elems: elems}, nil
	case lexer.IDENT:
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		if p.at(lexer.COLONCOLON) {
			p.advance()
			variant, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			var inner ast.Pattern
			if p.at(lexer.LPAREN) {
				p.advance()
				inner, err = p.parsePattern()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(lexer.RPAREN); err != nil {
					return nil, err
				}
			}
			return &ast.EnumPattern{TypeName: name, VariantName: variant, Inner: inner}, nil
		}

		if p.at(lexer.LBRACE) {
			p.advance()
			var fields []ast.FieldPattern
			for !p.at(lexer.RBRACE) {
				fieldName, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(lexer.COLON); err != nil {
					return nil, err
				}
				fieldPat, err := p.parsePattern()
				if err != nil {
					return nil, err
				}
				fields = append(fields, ast.FieldPattern{Name: fieldName, Pattern: fieldPat})
				if p.at(lexer.COMMA) {
					p.advance()
				} else {
					break
				}
			}
			if _, err := p.expect(lexer.RBRACE); err != nil {
				return nil, err
			}
			return &ast.StructPattern{Name: name, Fields: fields}, nil
		}

		return &ast.IdentPattern{Name: name}, nil
	default:
		return nil, &ParseError{Expected: "pattern", Found: p.current()}
	}
}

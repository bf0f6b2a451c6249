package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

func (p *Parser) parseEnum() (*ast.Enum, error) {
	if _, err := p.expect(lexer.ENUM); err != nil {
		return nil, err
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenerics()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var variants []ast.Variant
	for !p.at(lexer.RBRACE) {
		variantName, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		var fields ast.VariantFields
		switch {
		case p.at(lexer.LPAREN):
			p.advance()
			var types []ast.Type
			for !p.at(lexer.RPAREN) {
				ty, err := p.parseType()
				if err != nil {
					return nil, err
				}
				types = append(types, ty)
				if p.at(lexer.COMMA) {
					p.advance()
				} else {
					break
				}
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			fields = ast.TupleFields{Types: types}
		case p.at(lexer.LBRACE):
			p.advance()
			var named []ast.Field
			for !p.at(lexer.RBRACE) {
				fieldName, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(lexer.COLON); err != nil {
					return nil, err
				}
				ty, err := p.parseType()
				if err != nil {
					return nil, err
				}
				named = append(named, ast.Field{Name: fieldName, Ty: ty})
				if p.at(lexer.COMMA) {
					p.advance()
				} else {
					break
				}
			}
			if _, err := p.expect(lexer.RBRACE); err != nil {
				return nil, err
			}
			fields = ast.NamedFields{Fields: named}
		default:
			fields = ast.UnitFields{}
		}

		variants = append(variants, ast.Variant{Name: variantName, Fields: fields})

		if p.at(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.Enum{Name: name, Generics: generics, Variants: variants}, nil
}

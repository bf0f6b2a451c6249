package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

func (p *Parser) parseStruct() (*ast.Struct, error) {
	if _, err := p.expect(lexer.STRUCT); err != nil {
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

	var fields []ast.Field
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
		fields = append(fields, ast.Field{Name: fieldName, Ty: ty})

		if p.at(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.Struct{Name: name, Generics: generics, Fields: fields}, nil
}

package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

// parseGenerics parses an optional `<A, B, ...>` generic parameter
// list, used by struct/enum/trait/impl/function headers alike.
func (p *Parser) parseGenerics() ([]string, error) {
	if !p.at(lexer.LT) {
		return nil, nil
	}
	p.advance()

	var generics []string
	for !p.at(lexer.GT) {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		generics = append(generics, name)
		if p.at(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}

	if _, err := p.expect(lexer.GT); err != nil {
		return nil, err
	}
	return generics, nil
}

// parseType parses a type annotation: a reference, a tuple, a fixed
// array, a bare path, or a generic instantiation.
func (p *Parser) parseType() (ast.Type, error) {
	if p.at(lexer.AMP) {
		p.advance()
		mut := false
		if p.at(lexer.MUT) {
			p.advance()
			mut = true
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.RefType{Inner: inner, Mut: mut}, nil
	}

	if p.at(lexer.LPAREN) {
		p.advance()
		var elems []ast.Type
		for !p.at(lexer.RPAREN) {
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			elems = append(elems, ty)
			if p.at(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return ast.TupleType{Elems: elems}, nil
	}

	if p.at(lexer.LBRACKET) {
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		if !p.at(lexer.INT) {
			return nil, &ParseError{Expected: "array size", Found: p.current()}
		}
		size := p.advance().IntVal
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return ast.ArrayType{Elem: elem, Size: int(size)}, nil
	}

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if p.at(lexer.LT) {
		p.advance()
		var args []ast.Type
		for !p.at(lexer.GT) {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.at(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		if _, err := p.expect(lexer.GT); err != nil {
			return nil, err
		}
		return ast.GenericType{Name: name, Args: args}, nil
	}

	return ast.PathType{Name: name}, nil
}

package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

func (p *Parser) parseTrait() (*ast.Trait, error) {
	if _, err := p.expect(lexer.TRAIT); err != nil {
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

	var methods []ast.TraitMethod
	for !p.at(lexer.RBRACE) {
		if _, err := p.expect(lexer.FN); err != nil {
			return nil, err
		}
		methodName, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}

		var retTy ast.Type
		if p.at(lexer.ARROW) {
			p.advance()
			retTy, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}

		var body *ast.Block
		if p.at(lexer.LBRACE) {
			body, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		} else if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}

		methods = append(methods, ast.TraitMethod{
			Name: methodName, Params: params, ReturnType: retTy, Body: body,
		})
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.Trait{Name: name, Generics: generics, Methods: methods}, nil
}

// parseImpl parses `impl<G> [Trait for] Target { fn ... }`. An
// inherent impl is distinguished from a trait impl by lookahead: the
// token after the first identifier is `for`.
func (p *Parser) parseImpl() (*ast.Impl, error) {
	if _, err := p.expect(lexer.IMPL); err != nil {
		return nil, err
	}
	generics, err := p.parseGenerics()
	if err != nil {
		return nil, err
	}

	var traitName string
	var target ast.Type
	if p.at(lexer.IDENT) && p.peekIsFor() {
		traitName, err = p.parseIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FOR); err != nil {
			return nil, err
		}
		target, err = p.parseType()
		if err != nil {
			return nil, err
		}
	} else {
		target, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.at(lexer.RBRACE) {
		if p.at(lexer.PUB) {
			p.advance()
		}
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		methods = append(methods, fn)
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.Impl{Generics: generics, TraitName: traitName, Target: target, Methods: methods}, nil
}

// peekIsFor reports whether the token after the current identifier is
// `for`, without consuming anything — the signal that distinguishes
// `impl Trait for Target` from a bare `impl Target`.
func (p *Parser) peekIsFor() bool {
	return p.peek().Type == lexer.FOR
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	if _, err := p.expect(lexer.FN); err != nil {
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
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	var retTy ast.Type
	if p.at(lexer.ARROW) {
		p.advance()
		retTy, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Generics: generics, Params: params, ReturnType: retTy, Body: body}, nil
}

// parseParams parses a comma-separated parameter list, including the
// three self-receiver spellings (`self`, `&self`, `&mut self`).
func (p *Parser) parseParams() ([]ast.Param, error) {
	var params []ast.Param

	for !p.at(lexer.RPAREN) {
		var name string
		var isSelf, isMut bool

		switch {
		case p.at(lexer.SELF):
			p.advance()
			name, isSelf = "self", true
		case p.at(lexer.AMP):
			p.advance()
			if p.at(lexer.MUT) {
				p.advance()
				isMut = true
			}
			if _, err := p.expect(lexer.SELF); err != nil {
				return nil, err
			}
			name, isSelf = "self", true
		default:
			if p.at(lexer.MUT) {
				p.advance()
				isMut = true
			}
			var err error
			name, err = p.parseIdent()
			if err != nil {
				return nil, err
			}
		}

		var ty ast.Type
		if isSelf && !p.at(lexer.COLON) {
			ty = ast.PathType{Name: ast.SelfType}
		} else {
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			var err error
			ty, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}

		params = append(params, ast.Param{Name: name, Ty: ty, IsSelf: isSelf, IsMut: isMut})

		if p.at(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}

	return params, nil
}

func (p *Parser) parseConst() (*ast.Const, error) {
	if _, err := p.expect(lexer.CONST); err != nil {
		return nil, err
	}
	name, err := p.parseIdent()
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
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Const{Name: name, Ty: ty, Val: val}, nil
}

package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

// parsePostfix layers call, field/method access, indexing, and cast
// onto a primary expression. `as Type` is parsed and discarded: the
// target has no type system to cast into, so only the side effect of
// consuming the cast's type annotation matters.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case lexer.DOT:
			p.advance()
			if p.peek().Type == lexer.LPAREN {
				method, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(lexer.LPAREN); err != nil {
					return nil, err
				}
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(lexer.RPAREN); err != nil {
					return nil, err
				}
				expr = &ast.MethodCallExpr{Receiver: expr, Name: method, Args: args}
			} else {
				field, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				expr = &ast.FieldExpr{Receiver: expr, Name: field}
			}
		case lexer.LBRACKET:
			p.advance()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Receiver: expr, Index: index}
		case lexer.LPAREN:
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Callee: expr, Args: args}
		case lexer.AS:
			p.advance()
			if _, err := p.parseType(); err != nil {
				return nil, err
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	for !p.at(lexer.RPAREN) {
		arg, err := p.parseExpr()
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
	return args, nil
}

// rangeEndFollows reports whether the current token can start a range
// endpoint expression, the same lookahead original_source's parser
// uses before committing to `start..end` over a bare `start..`.
func (p *Parser) rangeEndFollows() bool {
	switch p.current().Type {
	case lexer.INT, lexer.IDENT, lexer.LPAREN:
		return true
	default:
		return false
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.current().Type {
	case lexer.INT:
		tok := p.advance()
		lit := &ast.LiteralExpr{Lit: ast.Literal{Kind: ast.LitInt, Int: tok.IntVal}}
		return p.maybeRange(lit)
	case lexer.FLOAT:
		tok := p.advance()
		return &ast.LiteralExpr{Lit: ast.Literal{Kind: ast.LitFloat, Flt: tok.FloatVal}}, nil
	case lexer.BOOL:
		tok := p.advance()
		return &ast.LiteralExpr{Lit: ast.Literal{Kind: ast.LitBool, Bool: tok.BoolVal}}, nil
	case lexer.STRING:
		tok := p.advance()
		return &ast.LiteralExpr{Lit: ast.Literal{Kind: ast.LitString, Str: tok.Literal}}, nil
	case lexer.CHAR:
		tok := p.advance()
		return &ast.LiteralExpr{Lit: ast.Literal{Kind: ast.LitChar, Chr: tok.CharVal}}, nil
	case lexer.LPAREN:
		p.advance()
		var elems []ast.Expr
		for !p.at(lexer.RPAREN) {
			elem, err := p.parseExpr()
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
		if len(elems) == 1 {
			return elems[0], nil
		}
		return &ast.TupleExpr{Elems: elems}, nil
	case lexer.LBRACKET:
		p.advance()
		var elems []ast.Expr
		for !p.at(lexer.RBRACKET) {
			elem, err := p.parseExpr()
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
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayLitExpr{Elems: elems}, nil
	case lexer.LBRACE:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.BlockExpr{Body: block}, nil
	case lexer.IF:
		ifStmt, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		return &ast.IfExpr{If: ifStmt}, nil
	case lexer.MATCH:
		matchStmt, err := p.parseMatchStatement()
		if err != nil {
			return nil, err
		}
		return &ast.MatchExpr{Match: matchStmt}, nil
	case lexer.SELF:
		p.advance()
		return &ast.Ident{Name: "self"}, nil
	case lexer.IDENT:
		return p.parseIdentPrimary()
	case lexer.DOTDOT:
		p.advance()
		if p.rangeEndFollows() {
			end, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.RangeExpr{End: end}, nil
		}
		return &ast.RangeExpr{}, nil
	default:
		return nil, &ParseError{Expected: "expression", Found: p.current()}
	}
}

// maybeRange wraps a just-parsed literal start in a RangeExpr if a
// `..` follows, so `0..10` lexes/parses as one expression rather than
// a literal followed by a dangling range token.
func (p *Parser) maybeRange(start ast.Expr) (ast.Expr, error) {
	if !p.at(lexer.DOTDOT) {
		return start, nil
	}
	p.advance()
	if p.rangeEndFollows() {
		end, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.RangeExpr{Start: start, End: end}, nil
	}
	return &ast.RangeExpr{Start: start}, nil
}

// parseIdentPrimary handles every construct that begins with a bare
// identifier: None/Some, Enum::Variant paths, struct literals (with
// one-token speculative lookahead to tell them apart from a block
// following an identifier, e.g. the `cond {` of `if cond { ... }`
// stays a plain identifier while `Point { x: 0 }` becomes a struct
// literal), and plain identifier references.
func (p *Parser) parseIdentPrimary() (ast.Expr, error) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if name == "None" {
		return &ast.NoneExpr{}, nil
	}
	if name == "Some" {
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.SomeExpr{Inner: inner}, nil
	}

	if p.at(lexer.COLONCOLON) {
		p.advance()
		variant, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.Ident{Name: name + "::" + variant}, nil
	}

	if p.at(lexer.LBRACE) {
		if isStruct, err := p.looksLikeStructLiteral(); err != nil {
			return nil, err
		} else if isStruct {
			return p.parseStructLiteralBody(name)
		}
		return &ast.Ident{Name: name}, nil
	}

	return p.maybeRange(&ast.Ident{Name: name})
}

// looksLikeStructLiteral speculatively consumes the opening `{` and
// checks for an `ident :` pair, then restores the parser position
// regardless of the outcome — the same backtracking trick
// original_source's parser uses to disambiguate a struct literal from
// any other construct that can follow an identifier immediately
// before a brace.
func (p *Parser) looksLikeStructLiteral() (bool, error) {
	saved := p.pos
	p.advance() // consume '{'

	isStruct := false
	if p.at(lexer.IDENT) {
		next := p.pos
		p.advance()
		isStruct = p.at(lexer.COLON)
		p.pos = next
	}

	p.pos = saved
	return isStruct, nil
}

func (p *Parser) parseStructLiteralBody(name string) (ast.Expr, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var fields []ast.FieldInit
	for !p.at(lexer.RBRACE) {
		fieldName, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.FieldInit{Name: fieldName, Value: value})
		if p.at(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.StructLitExpr{Name: name, Fields: fields}, nil
}

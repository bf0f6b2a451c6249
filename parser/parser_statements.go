package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.at(lexer.RBRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.Block{Stmts: stmts}, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.current().Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		p.advance()
		var x ast.Expr
		if !p.at(lexer.SEMICOLON) {
			var err error
			x, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{X: x}, nil
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.MATCH:
		return p.parseMatchStatement()
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.at(lexer.ASSIGN) {
			p.advance()
			rhs, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.at(lexer.SEMICOLON) {
				p.advance()
			}
			return &ast.AssignStmt{Lhs: expr, Rhs: rhs}, nil
		}
		if p.at(lexer.SEMICOLON) {
			p.advance()
		}
		return &ast.ExprStmt{X: expr}, nil
	}
}

func (p *Parser) parseLetStatement() (*ast.LetStmt, error) {
	if _, err := p.expect(lexer.LET); err != nil {
		return nil, err
	}
	isMut := false
	if p.at(lexer.MUT) {
		p.advance()
		isMut = true
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	var ty ast.Type
	if p.at(lexer.COLON) {
		p.advance()
		ty, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	var value ast.Expr
	if p.at(lexer.ASSIGN) {
		p.advance()
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.LetStmt{Name: name, Ty: ty, Value: value, IsMut: isMut}, nil
}

func (p *Parser) parseIfStatement() (*ast.IfStmt, error) {
	if _, err := p.expect(lexer.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.Block
	if p.at(lexer.ELSE) {
		p.advance()
		if p.at(lexer.IF) {
			nested, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			elseBlock = &ast.Block{Stmts: []ast.Stmt{nested}}
		} else {
			elseBlock, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock}, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStmt, error) {
	if _, err := p.expect(lexer.WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseForStatement() (*ast.ForStmt, error) {
	if _, err := p.expect(lexer.FOR); err != nil {
		return nil, err
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Var: name, Iter: iter, Body: body}, nil
}

func (p *Parser) parseMatchStatement() (*ast.MatchStmt, error) {
	if _, err := p.expect(lexer.MATCH); err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var arms []ast.MatchArm
	for !p.at(lexer.RBRACE) {
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FATARROW); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.MatchArm{Pattern: pattern, Body: body})

		if p.at(lexer.COMMA) {
			p.advance()
		}
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return &ast.MatchStmt{Scrutinee: scrutinee, Arms: arms}, nil
}

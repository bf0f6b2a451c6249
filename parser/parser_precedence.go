package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

// parseExpr is the entry point of the 10-level precedence ladder,
// from loosest (logical or) to tightest (multiplicative), each level
// left-associative over the one below it.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.OROR) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.ANDAND) {
		p.advance()
		right, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseBitOr() (ast.Expr, error) {
	left, err := p.parseBitXor()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.PIPE) {
		p.advance()
		right, err := p.parseBitXor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpBitOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseBitXor() (ast.Expr, error) {
	left, err := p.parseBitAnd()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.CARET) {
		p.advance()
		right, err := p.parseBitAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpBitXor, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseBitAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.AMP) {
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpBitAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.EQEQ:
			op = ast.OpEq
		case lexer.NE:
			op = ast.OpNe
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.LT:
			op = ast.OpLt
		case lexer.LE:
			op = ast.OpLe
		case lexer.GT:
			op = ast.OpGt
		case lexer.GE:
			op = ast.OpGe
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseShift() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.SHL:
			op = ast.OpShl
		case lexer.SHR:
			op = ast.OpShr
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.PLUS:
			op = ast.OpAdd
		case lexer.MINUS:
			op = ast.OpSub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.STAR:
			op = ast.OpMul
		case lexer.SLASH:
			op = ast.OpDiv
		case lexer.PERCENT:
			op = ast.OpMod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parseUnary handles `!`, unary `-`, and reference-of `&`/`&mut`. The
// reference operator is parsed and discarded: rico8's target has no
// pointer/reference semantics, so `&x` and `&mut x` lower to plain `x`.
func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.current().Type {
	case lexer.BANG:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.OpNot, X: x}, nil
	case lexer.MINUS:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.OpNeg, X: x}, nil
	case lexer.AMP:
		p.advance()
		if p.at(lexer.MUT) {
			p.advance()
		}
		return p.parseUnary()
	default:
		return p.parsePostfix()
	}
}

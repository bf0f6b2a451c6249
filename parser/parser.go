// Package parser implements a hand-written recursive-descent parser
// for rico8 source.
//
// Unlike go-mix's Pratt parser, which collects errors in a slice and
// keeps going so a REPL session can report several mistakes at once,
// this parser fails fast: the first malformed construct aborts parsing
// immediately with a single *ParseError. rico8 programs are translated
// in one shot by a batch CLI, not typed interactively, so there is
// nothing gained by trying to recover and nowhere to display a second
// error anyway.
//
// The grammar is a 10-level operator-precedence ladder (or, and,
// bitwise-or, bitwise-xor, bitwise-and, equality, relational, shift,
// additive, multiplicative) feeding a unary layer and a postfix layer
// for calls, field/method access, indexing, and casts.
package parser

import (
	"fmt"

	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

// ParseError reports the single failure that stopped parsing.
type ParseError struct {
	Expected string
	Found    lexer.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: expected %s, found %s", e.Expected, e.Found)
}

// Parser walks a flat token slice with a one-token lookahead buffer.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New builds a Parser over an already-tokenized source.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes src and parses it into a Program.
func Parse(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// expect consumes the current token if it matches tt, else fails.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if !p.at(tt) {
		return lexer.Token{}, &ParseError{Expected: string(tt), Found: p.current()}
	}
	return p.advance(), nil
}

func (p *Parser) parseIdent() (string, error) {
	tok, err := p.expect(lexer.IDENT)
	if err != nil {
		return "", &ParseError{Expected: "identifier", Found: p.current()}
	}
	return tok.Literal, nil
}

// ParseProgram parses every use statement followed by every item, the
// shape original_source's parse_program enforces.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.at(lexer.USE) {
		use, err := p.parseUseStatement()
		if err != nil {
			return nil, err
		}
		prog.Imports = append(prog.Imports, use)
	}

	for !p.at(lexer.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		prog.Items = append(prog.Items, item)
	}

	return prog, nil
}

// parseItem dispatches on the leading keyword of a top-level
// declaration. A leading `pub` is accepted and discarded as additive
// sugar — rico8 has no visibility model, so the keyword carries no
// semantics beyond letting ported snippets keep it.
func (p *Parser) parseItem() (ast.Item, error) {
	if p.at(lexer.PUB) {
		p.advance()
	}

	switch p.current().Type {
	case lexer.STRUCT:
		return p.parseStruct()
	case lexer.ENUM:
		return p.parseEnum()
	case lexer.TRAIT:
		return p.parseTrait()
	case lexer.IMPL:
		return p.parseImpl()
	case lexer.FN:
		return p.parseFunction()
	case lexer.CONST:
		return p.parseConst()
	case lexer.LET:
		stmt, err := p.parseLetStatement()
		if err != nil {
			return nil, err
		}
		return &ast.Global{Stmt: stmt}, nil
	default:
		return nil, &ParseError{Expected: "item", Found: p.current()}
	}
}

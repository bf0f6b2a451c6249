package parser

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/lexer"
)

// parseUseStatement parses `use [crate::|super::]path::...;`, which
// ends in a glob, a brace list, an `as` alias, or a simple name.
func (p *Parser) parseUseStatement() (*ast.UseStatement, error) {
	if _, err := p.expect(lexer.USE); err != nil {
		return nil, err
	}

	var path []string
	if p.at(lexer.CRATE) {
		path = append(path, "crate")
		p.advance()
		if _, err := p.expect(lexer.COLONCOLON); err != nil {
			return nil, err
		}
	} else if p.at(lexer.SUPER) {
		path = append(path, "super")
		p.advance()
		if _, err := p.expect(lexer.COLONCOLON); err != nil {
			return nil, err
		}
	}

	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	path = append(path, first)

	for p.at(lexer.COLONCOLON) {
		p.advance()

		if p.at(lexer.STAR) {
			p.advance()
			if _, err := p.expect(lexer.SEMICOLON); err != nil {
				return nil, err
			}
			return &ast.UseStatement{Path: path, Tree: ast.UseGlob{}}, nil
		}
		if p.at(lexer.LBRACE) {
			items, err := p.parseUseTreeList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.SEMICOLON); err != nil {
				return nil, err
			}
			return &ast.UseStatement{Path: path, Tree: ast.UseList{Items: items}}, nil
		}

		seg, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		path = append(path, seg)
	}

	if p.at(lexer.AS) {
		p.advance()
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		original := path[len(path)-1]
		path = path[:len(path)-1]
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.UseStatement{Path: path, Tree: ast.UseAlias{Name: original, Alias: alias}}, nil
	}

	name := path[len(path)-1]
	path = path[:len(path)-1]
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.UseStatement{Path: path, Tree: ast.UseSimple{Name: name}}, nil
}

func (p *Parser) parseUseTreeList() ([]ast.UseTree, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var items []ast.UseTree
	for !p.at(lexer.RBRACE) {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if p.at(lexer.AS) {
			p.advance()
			alias, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			items = append(items, ast.UseAlias{Name: name, Alias: alias})
		} else {
			items = append(items, ast.UseSimple{Name: name})
		}

		if p.at(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}

	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return items, nil
}

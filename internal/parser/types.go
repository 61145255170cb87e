package parser

import (
	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/token"
)

// parseType parses a type expression: a ::-rooted named path with optional
// angle-bracketed arguments, a reference, a lifetime, the unit type or a
// tuple. Type expressions are carried opaquely; only the wrapper extraction
// inspects them.
func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.AMP:
		return p.parseReferenceType()
	case token.LIFETIME:
		lt := &ast.LifetimeType{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		return lt
	case token.LPAREN:
		return p.parseTupleType()
	case token.IDENT, token.PATHSEP:
		return p.parseNamedType()
	default:
		p.errorf(diagnostics.ErrP001, p.curToken, "unexpected token %q in type", p.curToken.Lexeme)
		return nil
	}
}

// parseReferenceType parses &T, &mut T and &'a T.
func (p *Parser) parseReferenceType() ast.Type {
	tok := p.curToken
	p.nextToken() // consume '&'

	if p.curTokenIs(token.LIFETIME) {
		p.nextToken()
	}

	mutable := false
	if p.curTokenIs(token.IDENT) && p.curToken.Lexeme == "mut" {
		mutable = true
		p.nextToken()
	}

	inner := p.parseType()
	if p.failed {
		return nil
	}
	return &ast.ReferenceType{Token: tok, Mutable: mutable, Inner: inner}
}

// parseTupleType parses () and (T1, T2, ...).
func (p *Parser) parseTupleType() ast.Type {
	tok := p.curToken
	p.nextToken() // consume '('

	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.UnitType{Token: tok}
	}

	var types []ast.Type
	for {
		t := p.parseType()
		if p.failed {
			return nil
		}
		types = append(types, t)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.curTokenIs(token.RPAREN) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected ')' in tuple type, got %q", p.curToken.Lexeme)
		return nil
	}
	p.nextToken()

	return &ast.TupleType{Token: tok, Types: types}
}

// parseNamedType parses a path type: String, std::string::String,
// ::pyo3::PyResult<i64>. Any segment may carry angle-bracketed arguments.
func (p *Parser) parseNamedType() ast.Type {
	tok := p.curToken

	rooted := false
	if p.curTokenIs(token.PATHSEP) {
		rooted = true
		p.nextToken()
	}

	var segments []*ast.PathSegment
	for {
		if !p.curTokenIs(token.IDENT) {
			p.errorf(diagnostics.ErrP001, p.curToken, "expected type name, got %q", p.curToken.Lexeme)
			return nil
		}
		seg := &ast.PathSegment{Name: p.curToken.Lexeme}
		p.nextToken()

		if p.curTokenIs(token.LANGLE) {
			seg.Args = p.parseTypeArgs()
			if p.failed {
				return nil
			}
		}
		segments = append(segments, seg)

		if p.curTokenIs(token.PATHSEP) {
			p.nextToken()
			continue
		}
		break
	}

	return &ast.NamedType{Token: tok, Rooted: rooted, Segments: segments}
}

// parseTypeArgs parses <T, ...>. curToken must be '<'.
func (p *Parser) parseTypeArgs() []ast.Type {
	p.nextToken() // consume '<'

	var args []ast.Type
	for {
		t := p.parseType()
		if p.failed {
			return nil
		}
		args = append(args, t)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.curTokenIs(token.RANGLE) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected '>' in type arguments, got %q", p.curToken.Lexeme)
		return nil
	}
	p.nextToken()

	return args
}

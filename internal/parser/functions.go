package parser

import (
	"strings"

	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/token"
)

// parseFunction parses: fn NAME [<generics>] (params) [-> Type] { body } | ;
// The body is skipped without interpretation.
func (p *Parser) parseFunction(public bool) ast.Item {
	tok := p.curToken
	p.nextToken() // consume 'fn'

	if !p.curTokenIs(token.IDENT) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected function name, got %q", p.curToken.Lexeme)
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()

	var generics []string
	if p.curTokenIs(token.LANGLE) {
		generics = p.parseGenericParams()
		if p.failed {
			return nil
		}
	}

	if !p.curTokenIs(token.LPAREN) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected '(' after function name %q, got %q", name, p.curToken.Lexeme)
		return nil
	}
	p.nextToken() // consume '('

	params := p.parseParams()
	if p.failed {
		return nil
	}
	p.nextToken() // consume ')'

	var ret ast.Type
	if p.curTokenIs(token.ARROW) {
		p.nextToken()
		ret = p.parseType()
		if p.failed {
			return nil
		}
	}

	switch p.curToken.Type {
	case token.LBRACE:
		p.skipBalanced(token.LBRACE, token.RBRACE)
		if p.failed {
			return nil
		}
	case token.SEMICOLON:
		p.nextToken()
	default:
		p.errorf(diagnostics.ErrP001, p.curToken, "expected function body or ';', got %q", p.curToken.Lexeme)
		return nil
	}

	return &ast.Function{
		Token:    tok,
		Name:     name,
		Public:   public,
		Generics: generics,
		Params:   params,
		Return:   ret,
	}
}

// parseGenericParams collects the names inside <...> after a function name
// (lifetimes and type parameters). They are carried, never interpreted.
func (p *Parser) parseGenericParams() []string {
	var generics []string
	depth := 0
	for {
		switch p.curToken.Type {
		case token.LANGLE:
			depth++
		case token.RANGLE:
			depth--
		case token.LIFETIME:
			generics = append(generics, "'"+p.curToken.Lexeme)
		case token.IDENT:
			generics = append(generics, p.curToken.Lexeme)
		case token.EOF:
			p.errorf(diagnostics.ErrP002, p.curToken, "unexpected end of input in generic parameter list")
			return nil
		}
		p.nextToken()
		if depth == 0 {
			return generics
		}
	}
}

// parseParams parses the parameter list up to the closing ')'. The ')' is
// left as curToken for the caller.
//
// A parameter is normally IDENT ':' Type. A bare identifier (no annotation)
// is accepted for the leading context handle. Anything else is scanned
// through as a raw parameter; the transformer rejects those.
func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.errorf(diagnostics.ErrP002, p.curToken, "unexpected end of input in parameter list")
			return nil
		}

		param := p.parseParam()
		if p.failed {
			return nil
		}
		params = append(params, param)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.curTokenIs(token.RPAREN) {
			p.errorf(diagnostics.ErrP001, p.curToken, "expected ',' or ')' in parameter list, got %q", p.curToken.Lexeme)
			return nil
		}
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
		tok := p.curToken
		name := p.curToken.Lexeme
		p.nextToken() // consume name
		p.nextToken() // consume ':'
		ty := p.parseType()
		if p.failed {
			return nil
		}
		return &ast.Param{Token: tok, Name: name, Type: ty}
	}

	if p.curTokenIs(token.IDENT) && (p.peekTokenIs(token.COMMA) || p.peekTokenIs(token.RPAREN)) {
		param := &ast.Param{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		return param
	}

	// Not a simple named binding (pattern, self receiver, ...). Scan it
	// through, keeping its text for the transformer's error message.
	tok := p.curToken
	var raw []string
	depth := 0
	for {
		switch p.curToken.Type {
		case token.LPAREN, token.LANGLE, token.LBRACKET:
			depth++
		case token.RANGLE, token.RBRACKET:
			depth--
		case token.RPAREN:
			if depth == 0 {
				return &ast.Param{Token: tok, Raw: strings.Join(raw, " ")}
			}
			depth--
		case token.COMMA:
			if depth == 0 {
				return &ast.Param{Token: tok, Raw: strings.Join(raw, " ")}
			}
		case token.EOF:
			p.errorf(diagnostics.ErrP002, p.curToken, "unexpected end of input in parameter list")
			return nil
		}
		raw = append(raw, p.curToken.Lexeme)
		p.nextToken()
	}
}

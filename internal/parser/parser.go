package parser

import (
	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/pipeline"
	"github.com/bindweld/bindweld/internal/token"
)

// Parser builds a SourceUnit from a token stream. It is a purely structural
// parser for the binding generator's output shape: nested module groups,
// function declarations, use lines. Function bodies are skipped as balanced
// brace groups; declarations it does not model are carried as opaque items.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx    *pipeline.PipelineContext
	failed bool
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	p.failed = true
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, format, args...))
}

// ParseSourceUnit parses the whole token stream.
func (p *Parser) ParseSourceUnit() *ast.SourceUnit {
	items := p.parseItems(token.EOF)
	return &ast.SourceUnit{Items: items}
}

// parseItems parses items until the end token (EOF at the top level, RBRACE
// inside a module body). The end token is not consumed.
func (p *Parser) parseItems(end token.TokenType) []ast.Item {
	var items []ast.Item
	for !p.curTokenIs(end) && !p.curTokenIs(token.EOF) && !p.failed {
		for p.curTokenIs(token.HASH) {
			p.skipAttribute()
			if p.failed {
				return items
			}
		}
		if p.curTokenIs(end) || p.curTokenIs(token.EOF) {
			break
		}
		item := p.parseItem()
		if item == nil {
			return items
		}
		items = append(items, item)
	}
	if !p.failed && !p.curTokenIs(end) {
		p.errorf(diagnostics.ErrP002, p.curToken, "unexpected end of input, expected %q", string(end))
	}
	return items
}

func (p *Parser) parseItem() ast.Item {
	public := false
	if p.curTokenIs(token.PUB) {
		public = true
		p.nextToken()
		// pub(crate), pub(super)
		if p.curTokenIs(token.LPAREN) {
			p.skipBalanced(token.LPAREN, token.RPAREN)
		}
	}

	switch p.curToken.Type {
	case token.MOD:
		return p.parseModule()
	case token.FN:
		return p.parseFunction(public)
	case token.USE:
		return p.parseUse()
	default:
		return p.parseOpaqueItem()
	}
}

// parseModule parses: mod NAME { items }
func (p *Parser) parseModule() ast.Item {
	tok := p.curToken
	p.nextToken()

	if !p.curTokenIs(token.IDENT) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected module name, got %q", p.curToken.Lexeme)
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()

	if !p.curTokenIs(token.LBRACE) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected '{' after module name %q, got %q", name, p.curToken.Lexeme)
		return nil
	}
	p.nextToken() // consume '{'

	items := p.parseItems(token.RBRACE)
	if p.failed {
		return nil
	}
	p.nextToken() // consume '}'

	return &ast.Module{Token: tok, Name: name, Items: items}
}

// parseUse parses a use line up to its terminating semicolon. Grouped
// imports (use a::{b, c};) are accepted; only the plain path is recorded.
func (p *Parser) parseUse() ast.Item {
	tok := p.curToken
	p.nextToken()

	var path []string
	for !p.curTokenIs(token.SEMICOLON) {
		switch p.curToken.Type {
		case token.EOF:
			p.errorf(diagnostics.ErrP002, p.curToken, "unexpected end of input in use declaration")
			return nil
		case token.IDENT:
			path = append(path, p.curToken.Lexeme)
			p.nextToken()
		case token.LBRACE:
			p.skipBalanced(token.LBRACE, token.RBRACE)
			if p.failed {
				return nil
			}
		default:
			p.nextToken()
		}
	}
	p.nextToken() // consume ';'

	return &ast.Use{Token: tok, Path: path}
}

// parseOpaqueItem skips a declaration the tree does not model: everything
// up to a top-level semicolon or through one balanced brace group.
func (p *Parser) parseOpaqueItem() ast.Item {
	tok := p.curToken
	for {
		switch p.curToken.Type {
		case token.EOF:
			p.errorf(diagnostics.ErrP002, tok, "unexpected end of input in declaration starting with %q", tok.Lexeme)
			return nil
		case token.SEMICOLON:
			p.nextToken()
			return &ast.OpaqueItem{Token: tok}
		case token.LBRACE:
			p.skipBalanced(token.LBRACE, token.RBRACE)
			if p.failed {
				return nil
			}
			return &ast.OpaqueItem{Token: tok}
		case token.RBRACE:
			p.errorf(diagnostics.ErrP001, p.curToken, "unexpected '}'")
			return nil
		default:
			p.nextToken()
		}
	}
}

// skipAttribute skips #[...] and #![...].
func (p *Parser) skipAttribute() {
	p.nextToken() // consume '#'
	if p.curTokenIs(token.BANG) {
		p.nextToken()
	}
	if !p.curTokenIs(token.LBRACKET) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected '[' in attribute, got %q", p.curToken.Lexeme)
		return
	}
	p.skipBalanced(token.LBRACKET, token.RBRACKET)
}

// skipBalanced consumes one balanced open..close group, including nested
// groups of the same kind. curToken must be the opening token.
func (p *Parser) skipBalanced(open, close token.TokenType) {
	depth := 0
	for {
		switch p.curToken.Type {
		case open:
			depth++
		case close:
			depth--
		case token.EOF:
			p.errorf(diagnostics.ErrP002, p.curToken, "unexpected end of input, unclosed %q", string(open))
			return
		}
		p.nextToken()
		if depth == 0 {
			return
		}
	}
}

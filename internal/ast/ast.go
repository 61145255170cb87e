// Package ast defines the syntax tree for the generated binding source.
//
// The tree is deliberately narrow: it models exactly the shape the binding
// generator emits (nested module groups, function declarations with typed
// parameters, use lines) and carries everything else as opaque items.
package ast

import (
	"github.com/bindweld/bindweld/internal/token"
)

// Node is the base interface for all syntax tree nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Item is a Node that can appear in a module body or at the top level.
type Item interface {
	Node
	itemNode()
}

// SourceUnit is the root node: the parsed representation of one input file.
type SourceUnit struct {
	File  string // source file path
	Items []Item
}

func (su *SourceUnit) TokenLiteral() string {
	if len(su.Items) > 0 {
		return su.Items[0].TokenLiteral()
	}
	return ""
}

func (su *SourceUnit) GetToken() token.Token {
	if su == nil || len(su.Items) == 0 {
		return token.Token{}
	}
	return su.Items[0].GetToken()
}

// Module is a nested module group: mod name { items }.
type Module struct {
	Token token.Token // the 'mod' token
	Name  string
	Items []Item
}

func (m *Module) itemNode()            {}
func (m *Module) TokenLiteral() string { return m.Token.Lexeme }
func (m *Module) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

// Param is one function parameter. Name is empty when the parameter is not a
// plain identifier binding; Raw then carries its source text for reporting.
// Type is nil for a bare context-handle parameter without an annotation.
type Param struct {
	Token token.Token
	Name  string
	Type  Type
	Raw   string
}

func (p *Param) TokenLiteral() string { return p.Token.Lexeme }
func (p *Param) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// Function is a function declaration. The body is never represented — the
// parser skips it as a balanced brace group.
type Function struct {
	Token    token.Token // the 'fn' token
	Name     string
	Public   bool
	Generics []string // raw generic parameter names, e.g. 'py; carried, not interpreted
	Params   []*Param
	Return   Type // nil when the declaration has no return type
}

func (f *Function) itemNode()            {}
func (f *Function) TokenLiteral() string { return f.Token.Lexeme }
func (f *Function) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// Use is an import line: use a::b::c;
type Use struct {
	Token token.Token
	Path  []string
}

func (u *Use) itemNode()            {}
func (u *Use) TokenLiteral() string { return u.Token.Lexeme }
func (u *Use) GetToken() token.Token {
	if u == nil {
		return token.Token{}
	}
	return u.Token
}

// OpaqueItem is any declaration the transformer has no interest in. It is
// retained only so the locator sees the same item count the source has.
type OpaqueItem struct {
	Token token.Token
}

func (o *OpaqueItem) itemNode()            {}
func (o *OpaqueItem) TokenLiteral() string { return o.Token.Lexeme }
func (o *OpaqueItem) GetToken() token.Token {
	if o == nil {
		return token.Token{}
	}
	return o.Token
}

package ast

import (
	"strings"

	"github.com/bindweld/bindweld/internal/token"
)

// Type is a type expression. Types are carried structurally and rendered
// back to source text verbatim; only the transformer's wrapper extraction
// inspects their shape.
type Type interface {
	Node
	typeNode()
	String() string
}

// PathSegment is one segment of a named type path, with optional
// angle-bracketed type arguments: PyResult<String>, Vec<u8>.
type PathSegment struct {
	Name string
	Args []Type
}

func (ps *PathSegment) String() string {
	if len(ps.Args) == 0 {
		return ps.Name
	}
	parts := make([]string, len(ps.Args))
	for i, a := range ps.Args {
		parts[i] = a.String()
	}
	return ps.Name + "<" + strings.Join(parts, ", ") + ">"
}

// NamedType is a (possibly ::-rooted) path type: String, std::string::String,
// ::pyo3::PyResult<i64>.
type NamedType struct {
	Token    token.Token
	Rooted   bool // leading ::
	Segments []*PathSegment
}

func (nt *NamedType) typeNode()            {}
func (nt *NamedType) TokenLiteral() string { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token {
	if nt == nil {
		return token.Token{}
	}
	return nt.Token
}

func (nt *NamedType) String() string {
	parts := make([]string, len(nt.Segments))
	for i, s := range nt.Segments {
		parts[i] = s.String()
	}
	out := strings.Join(parts, "::")
	if nt.Rooted {
		out = "::" + out
	}
	return out
}

// Last returns the final path segment.
func (nt *NamedType) Last() *PathSegment {
	if len(nt.Segments) == 0 {
		return nil
	}
	return nt.Segments[len(nt.Segments)-1]
}

// ReferenceType is &T or &mut T.
type ReferenceType struct {
	Token   token.Token // the '&' token
	Mutable bool
	Inner   Type
}

func (rt *ReferenceType) typeNode()            {}
func (rt *ReferenceType) TokenLiteral() string { return rt.Token.Lexeme }
func (rt *ReferenceType) GetToken() token.Token {
	if rt == nil {
		return token.Token{}
	}
	return rt.Token
}

func (rt *ReferenceType) String() string {
	if rt.Mutable {
		return "&mut " + rt.Inner.String()
	}
	return "&" + rt.Inner.String()
}

// UnitType is the empty tuple type ().
type UnitType struct {
	Token token.Token
}

func (ut *UnitType) typeNode()            {}
func (ut *UnitType) TokenLiteral() string { return ut.Token.Lexeme }
func (ut *UnitType) GetToken() token.Token {
	if ut == nil {
		return token.Token{}
	}
	return ut.Token
}

func (ut *UnitType) String() string { return "()" }

// TupleType is (T1, T2, ...).
type TupleType struct {
	Token token.Token // the '(' token
	Types []Type
}

func (tt *TupleType) typeNode()            {}
func (tt *TupleType) TokenLiteral() string { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token {
	if tt == nil {
		return token.Token{}
	}
	return tt.Token
}

func (tt *TupleType) String() string {
	parts := make([]string, len(tt.Types))
	for i, t := range tt.Types {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// LifetimeType is a lifetime used in argument position: Python<'py>.
type LifetimeType struct {
	Token token.Token
	Name  string // without the leading quote
}

func (lt *LifetimeType) typeNode()            {}
func (lt *LifetimeType) TokenLiteral() string { return lt.Token.Lexeme }
func (lt *LifetimeType) GetToken() token.Token {
	if lt == nil {
		return token.Token{}
	}
	return lt.Token
}

func (lt *LifetimeType) String() string { return "'" + lt.Name }

package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT    TokenType = "IDENT"    // greet, PyResult, p_name
	LIFETIME TokenType = "LIFETIME" // 'py
	STRING   TokenType = "STRING"   // "..."
	CHAR     TokenType = "CHAR"     // 'a'
	NUMBER   TokenType = "NUMBER"   // 42, 3.14
	OTHER    TokenType = "OTHER"    // any body-level punctuation we carry but never interpret

	// Keywords
	MOD TokenType = "MOD"
	PUB TokenType = "PUB"
	FN  TokenType = "FN"
	USE TokenType = "USE"

	// Delimiters and operators
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	LANGLE    TokenType = "<"
	RANGLE    TokenType = ">"
	COMMA     TokenType = ","
	COLON     TokenType = ":"
	PATHSEP   TokenType = "::"
	SEMICOLON TokenType = ";"
	ARROW     TokenType = "->"
	HASH      TokenType = "#"
	BANG      TokenType = "!"
	AMP       TokenType = "&"
)

// Token is a single lexeme with its source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"mod": MOD,
	"pub": PUB,
	"fn":  FN,
	"use": USE,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

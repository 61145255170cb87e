package ast

import "github.com/bindweld/bindweld/internal/token"

// CommandParam is a parameter of a synthesized command: the renamed
// identifier plus its type rendered back to source text.
type CommandParam struct {
	Name string
	Type string
}

// Command is a transformed declaration: a function declaration after
// context-parameter elision, prefix stripping and success-type extraction.
// It is derived by copy — the Function it came from is never mutated.
type Command struct {
	Token   token.Token // the originating 'fn' token
	Name    string
	Params  []CommandParam
	Success string // extracted success type name
}

func (c *Command) TokenLiteral() string { return c.Token.Lexeme }
func (c *Command) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

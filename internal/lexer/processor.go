package lexer

import (
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/pipeline"
	"github.com/bindweld/bindweld/internal/token"
)

// LexerProcessor tokenizes ctx.SourceCode into ctx.TokenStream.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}

	l := New(ctx.SourceCode)
	var stream []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewError(diagnostics.ErrL001, tok, "lexical error: %s", tok.Lexeme)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		stream = append(stream, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = stream
	return ctx
}

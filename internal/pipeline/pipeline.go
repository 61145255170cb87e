package pipeline

import (
	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/token"
)

// PipelineContext carries the state of one build invocation through the
// stages. Data flows one way — each stage reads the previous stage's field
// and fills in its own.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	TokenStream []token.Token
	SourceUnit  *ast.SourceUnit
	Items       []ast.Item     // located declaration subset
	Commands    []*ast.Command // transformed declarations
	Output      []byte         // emitted command source

	// Skipped counts context-free bindings (fewer than two parameters)
	// that were filtered out, for verbose reporting.
	Skipped int

	Errors []*diagnostics.DiagnosticError
}

// Failed reports whether any stage has recorded an error.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages are expected to no-op once an earlier
// stage has recorded an error; Run itself never short-circuits so that all
// diagnostics from a stage are collected.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

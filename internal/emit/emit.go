// Package emit renders transformed declarations into command source text
// for the host framework's dispatch table.
package emit

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/pipeline"
	"github.com/bindweld/bindweld/internal/token"
)

// fileTemplate renders the whole output buffer: one use line, then one
// command per qualifying declaration, in input order.
const fileTemplate = `use {{.UsePath}};

{{range .Commands -}}
{{$.Marker}}
pub fn {{.Name}}({{paramList .Params}}) -> Result<{{.Success}}, String> {
    {{$.ScopeOpen}}
        {{$.CallPrefix}}::{{.Name}}({{argList $.ContextArg .Params}}).map_err(|e| e.to_string())
    {{$.ScopeClose}}
}

{{end -}}
`

// Emitter renders commands. All fields come from configuration; defaults
// follow the binding generator's convention.
type Emitter struct {
	// UsePath is the import line target, e.g. "crate::gen::py_bindings::src_py".
	UsePath string

	// CallPrefix qualifies the original binding in the call, normally the
	// last module-path segment.
	CallPrefix string

	// Marker is the dispatch-marker attribute line, e.g. "#[tauri::command]".
	Marker string

	// ScopeOpen and ScopeClose delimit the serialized interpreter-access
	// scope the command body runs in. The scope guards the embedded
	// interpreter process-wide: calls on other threads block until it is
	// free, and a failure inside it still releases it on return.
	ScopeOpen  string
	ScopeClose string

	// ContextArg is the re-acquired context handle passed as the first
	// argument of the original binding call.
	ContextArg string
}

var funcs = template.FuncMap{
	"paramList": func(params []ast.CommandParam) string {
		parts := make([]string, len(params))
		for i, p := range params {
			parts[i] = p.Name + ": " + p.Type
		}
		return strings.Join(parts, ", ")
	},
	"argList": func(contextArg string, params []ast.CommandParam) string {
		parts := make([]string, 0, len(params)+1)
		parts = append(parts, contextArg)
		for _, p := range params {
			parts = append(parts, p.Name)
		}
		return strings.Join(parts, ", ")
	},
}

var tmpl = template.Must(template.New("commands").Funcs(funcs).Parse(fileTemplate))

// Render produces the full output buffer for the given commands.
func (e *Emitter) Render(commands []*ast.Command) ([]byte, error) {
	data := struct {
		*Emitter
		Commands []*ast.Command
	}{e, commands}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EmitProcessor renders ctx.Commands into ctx.Output.
type EmitProcessor struct {
	Emitter Emitter
}

func (ep *EmitProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || ctx.Items == nil {
		return ctx
	}

	out, err := ep.Emitter.Render(ctx.Commands)
	if err != nil {
		wrapped := diagnostics.NewError(diagnostics.ErrW001, token.Token{}, "rendering commands: %v", err)
		wrapped.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, wrapped)
		return ctx
	}

	ctx.Output = out
	return ctx
}

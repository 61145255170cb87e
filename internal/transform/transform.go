// Package transform rewrites located function declarations into command
// declarations: the leading interpreter-context parameter is dropped, the
// public-parameter prefix is stripped from the remaining names, and the
// success type is extracted from the wrapped result type.
package transform

import (
	"strings"

	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/pipeline"
)

// Apply derives a Command from fn. fn is never mutated. The caller has
// already established len(fn.Params) >= 2.
func Apply(fn *ast.Function, prefix string) (*ast.Command, *diagnostics.DiagnosticError) {
	// The first parameter is the interpreter-context handle prepended by
	// the binding generator. It is re-acquired by the emitted command
	// body, so it is dropped here unconditionally.
	params := make([]ast.CommandParam, 0, len(fn.Params)-1)
	for _, p := range fn.Params[1:] {
		if p.Name == "" {
			return nil, diagnostics.NewError(
				diagnostics.ErrT001, p.GetToken(),
				"function %q: parameter %q is not a simple named binding",
				fn.Name, p.Raw,
			)
		}
		if p.Type == nil {
			return nil, diagnostics.NewError(
				diagnostics.ErrT001, p.GetToken(),
				"function %q: parameter %q has no type annotation",
				fn.Name, p.Name,
			)
		}
		params = append(params, ast.CommandParam{
			Name: strings.TrimPrefix(p.Name, prefix),
			Type: p.Type.String(),
		})
	}

	success, err := extractSuccess(fn)
	if err != nil {
		return nil, err
	}

	return &ast.Command{
		Token:   fn.Token,
		Name:    fn.Name,
		Params:  params,
		Success: success,
	}, nil
}

// extractSuccess pulls the success type out of the wrapped result type:
// the first path segment of the return type carrying exactly one
// angle-bracketed argument supplies it, and that argument must itself be a
// plain named type. Anything else violates the generator's convention.
func extractSuccess(fn *ast.Function) (string, *diagnostics.DiagnosticError) {
	if fn.Return == nil {
		return "", diagnostics.NewError(
			diagnostics.ErrT002, fn.GetToken(),
			"function %q has no return type", fn.Name,
		)
	}

	named, ok := fn.Return.(*ast.NamedType)
	if !ok {
		return "", diagnostics.NewError(
			diagnostics.ErrT002, fn.GetToken(),
			"function %q: return type %q is not a named wrapper type",
			fn.Name, fn.Return.String(),
		)
	}

	for _, seg := range named.Segments {
		if len(seg.Args) == 0 {
			continue
		}
		if len(seg.Args) != 1 {
			break
		}
		inner, ok := seg.Args[0].(*ast.NamedType)
		if !ok || !isSimple(inner) {
			break
		}
		return inner.Last().Name, nil
	}

	return "", diagnostics.NewError(
		diagnostics.ErrT002, fn.GetToken(),
		"function %q: return type %q is not a single-argument generic wrapper of a simple named type",
		fn.Name, fn.Return.String(),
	)
}

func isSimple(t *ast.NamedType) bool {
	for _, seg := range t.Segments {
		if len(seg.Args) > 0 {
			return false
		}
	}
	return len(t.Segments) > 0
}

// TransformProcessor selects the qualifying function declarations from
// ctx.Items and derives ctx.Commands. Functions with fewer than two
// parameters are context-free utility bindings and are skipped, not errors.
type TransformProcessor struct {
	Prefix string
}

func (tp *TransformProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || ctx.Items == nil {
		return ctx
	}

	var commands []*ast.Command
	for _, item := range ctx.Items {
		fn, ok := item.(*ast.Function)
		if !ok {
			continue
		}
		if len(fn.Params) < 2 {
			ctx.Skipped++
			continue
		}

		cmd, err := Apply(fn, tp.Prefix)
		if err != nil {
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		commands = append(commands, cmd)
	}

	ctx.Commands = commands
	return ctx
}

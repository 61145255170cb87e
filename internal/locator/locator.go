// Package locator resolves a configured module path against a parsed
// source unit. The path is a per-build constant; a missing segment means
// the upstream binding generator changed its emitted structure, which is
// fatal to the build.
package locator

import (
	"strings"

	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/pipeline"
)

// Locate walks the nested module groups of unit segment by segment and
// returns the item list of the final matched module. A path of length 1 is
// resolved directly against the unit's top-level items.
func Locate(unit *ast.SourceUnit, path []string) ([]ast.Item, *diagnostics.DiagnosticError) {
	current := unit.Items
	for i, segment := range path {
		mod := findModule(current, segment)
		if mod == nil {
			return nil, diagnostics.NewError(
				diagnostics.ErrM001,
				unit.GetToken(),
				"module %q not found (resolving path %q)",
				segment, strings.Join(path[:i+1], "::"),
			)
		}
		current = mod.Items
	}
	return current, nil
}

func findModule(items []ast.Item, name string) *ast.Module {
	for _, item := range items {
		if mod, ok := item.(*ast.Module); ok && mod.Name == name {
			return mod
		}
	}
	return nil
}

// LocatorProcessor resolves Path against ctx.SourceUnit into ctx.Items.
type LocatorProcessor struct {
	Path []string
}

func (lp *LocatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || ctx.SourceUnit == nil {
		return ctx
	}

	items, err := Locate(ctx.SourceUnit, lp.Path)
	if err != nil {
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	if items == nil {
		// An empty module still yields output (the use line alone).
		items = []ast.Item{}
	}

	ctx.Items = items
	return ctx
}

package transform_test

import (
	"testing"

	"github.com/bindweld/bindweld/internal/ast"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/lexer"
	"github.com/bindweld/bindweld/internal/locator"
	"github.com/bindweld/bindweld/internal/parser"
	"github.com/bindweld/bindweld/internal/pipeline"
	"github.com/bindweld/bindweld/internal/transform"
)

func runTransform(t *testing.T, input string, path []string) *pipeline.PipelineContext {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input, FilePath: "bindings.rs"}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	ctx = (&locator.LocatorProcessor{Path: path}).Process(ctx)
	ctx = (&transform.TransformProcessor{Prefix: "p_"}).Process(ctx)
	return ctx
}

func TestTransform_ElisionRenamingExtraction(t *testing.T) {
	ctx := runTransform(t, `
mod src_py {
    pub fn scale(py: Python, p_value: f64, p_factor: f64) -> PyResult<f64> {}
}
`, []string{"src_py"})

	if ctx.Failed() {
		t.Fatalf("unexpected errors: %v", ctx.Errors[0])
	}
	if len(ctx.Commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(ctx.Commands))
	}

	cmd := ctx.Commands[0]
	if cmd.Name != "scale" {
		t.Errorf("name = %q, want scale", cmd.Name)
	}
	if len(cmd.Params) != 2 {
		t.Fatalf("params = %d, want 2 (context elided)", len(cmd.Params))
	}
	want := []ast.CommandParam{{Name: "value", Type: "f64"}, {Name: "factor", Type: "f64"}}
	for i, p := range cmd.Params {
		if p != want[i] {
			t.Errorf("param %d = %+v, want %+v", i, p, want[i])
		}
	}
	if cmd.Success != "f64" {
		t.Errorf("success type = %q, want f64", cmd.Success)
	}
}

func TestTransform_UnprefixedNamePassesThrough(t *testing.T) {
	ctx := runTransform(t, `
mod m {
    pub fn f(py: Python, raw_value: i64) -> PyResult<i64> {}
}
`, []string{"m"})

	if ctx.Failed() {
		t.Fatalf("unexpected errors: %v", ctx.Errors[0])
	}
	if got := ctx.Commands[0].Params[0]; got.Name != "raw_value" || got.Type != "i64" {
		t.Errorf("param = %+v, want raw_value: i64", got)
	}
}

func TestTransform_SkipsContextFreeBindings(t *testing.T) {
	ctx := runTransform(t, `
mod m {
    pub fn no_args() -> PyResult<i64> {}
    pub fn only_context(py: Python) -> PyResult<i64> {}
    pub fn qualifies(py: Python, p_x: i64) -> PyResult<i64> {}
}
`, []string{"m"})

	if ctx.Failed() {
		t.Fatalf("unexpected errors: %v", ctx.Errors[0])
	}
	if len(ctx.Commands) != 1 || ctx.Commands[0].Name != "qualifies" {
		t.Fatalf("commands = %+v, want only 'qualifies'", ctx.Commands)
	}
	if ctx.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", ctx.Skipped)
	}
}

func TestTransform_SuccessTypeShapes(t *testing.T) {
	testCases := []struct {
		name    string
		ret     string
		success string
	}{
		{"plain_wrapper", "PyResult<String>", "String"},
		{"rooted_wrapper", "::pyo3::PyResult<i64>", "i64"},
		{"qualified_inner", "PyResult<std::string::String>", "String"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := runTransform(t, `
mod m {
    pub fn f(py: Python, p_x: i64) -> `+tc.ret+` {}
}
`, []string{"m"})
			if ctx.Failed() {
				t.Fatalf("unexpected errors: %v", ctx.Errors[0])
			}
			if got := ctx.Commands[0].Success; got != tc.success {
				t.Errorf("success = %q, want %q", got, tc.success)
			}
		})
	}
}

func TestTransform_ConventionViolations(t *testing.T) {
	testCases := []struct {
		name string
		fn   string
	}{
		{"no_return_type", "pub fn f(py: Python, p_x: i64) {}"},
		{"unwrapped_return", "pub fn f(py: Python, p_x: i64) -> i64 {}"},
		{"two_type_args", "pub fn f(py: Python, p_x: i64) -> Either<i64, String> {}"},
		{"nested_generic_inner", "pub fn f(py: Python, p_x: i64) -> PyResult<Vec<i64>> {}"},
		{"reference_return", "pub fn f(py: Python, p_x: i64) -> &str {}"},
		{"unit_return", "pub fn f(py: Python, p_x: i64) -> () {}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := runTransform(t, "mod m { "+tc.fn+" }", []string{"m"})
			if !ctx.Failed() {
				t.Fatal("expected ConventionViolation")
			}
			if ctx.Errors[0].Code != diagnostics.ErrT002 {
				t.Errorf("code = %s (%s), want %s", ctx.Errors[0].Code, ctx.Errors[0].Message, diagnostics.ErrT002)
			}
			if ctx.Commands != nil {
				t.Error("Commands should not be set on failure")
			}
		})
	}
}

func TestTransform_UnsupportedArgumentShapes(t *testing.T) {
	testCases := []struct {
		name string
		fn   string
	}{
		{"tuple_pattern", "pub fn f(py: Python, (a, b): (i64, i64)) -> PyResult<i64> {}"},
		{"untyped_param", "pub fn f(py: Python, loose) -> PyResult<i64> {}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := runTransform(t, "mod m { "+tc.fn+" }", []string{"m"})
			if !ctx.Failed() {
				t.Fatal("expected UnsupportedArgumentShape")
			}
			if ctx.Errors[0].Code != diagnostics.ErrT001 {
				t.Errorf("code = %s (%s), want %s", ctx.Errors[0].Code, ctx.Errors[0].Message, diagnostics.ErrT001)
			}
		})
	}
}

func TestTransform_OriginalDeclarationNotMutated(t *testing.T) {
	ctx := &pipeline.PipelineContext{SourceCode: `
mod m {
    pub fn f(py: Python, p_x: i64) -> PyResult<i64> {}
}
`}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	ctx = (&locator.LocatorProcessor{Path: []string{"m"}}).Process(ctx)

	fn := ctx.Items[0].(*ast.Function)
	ctx = (&transform.TransformProcessor{Prefix: "p_"}).Process(ctx)

	if len(fn.Params) != 2 {
		t.Fatalf("original params = %d, want 2", len(fn.Params))
	}
	if fn.Params[1].Name != "p_x" {
		t.Errorf("original param name = %q, want p_x (untouched)", fn.Params[1].Name)
	}
}

func TestTransform_PreservesInputOrder(t *testing.T) {
	ctx := runTransform(t, `
mod m {
    pub fn zeta(py: Python, p_a: i64) -> PyResult<i64> {}
    pub fn alpha(py: Python, p_b: i64) -> PyResult<i64> {}
    pub fn mid(py: Python, p_c: i64) -> PyResult<i64> {}
}
`, []string{"m"})

	if ctx.Failed() {
		t.Fatalf("unexpected errors: %v", ctx.Errors[0])
	}
	want := []string{"zeta", "alpha", "mid"}
	for i, cmd := range ctx.Commands {
		if cmd.Name != want[i] {
			t.Errorf("command %d = %q, want %q", i, cmd.Name, want[i])
		}
	}
}

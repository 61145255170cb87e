package pipeline_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/bindweld/bindweld/internal/config"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/emit"
	"github.com/bindweld/bindweld/internal/lexer"
	"github.com/bindweld/bindweld/internal/locator"
	"github.com/bindweld/bindweld/internal/parser"
	"github.com/bindweld/bindweld/internal/pipeline"
	"github.com/bindweld/bindweld/internal/transform"
)

// Each testdata archive bundles a build config, an input bindings file and
// either the expected output or the expected error code.
func TestPipeline_EndToEnd(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no testdata archives found")
	}

	for _, archivePath := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(archivePath), ".txtar"), func(t *testing.T) {
			archive, err := txtar.ParseFile(archivePath)
			if err != nil {
				t.Fatal(err)
			}

			files := make(map[string][]byte)
			for _, f := range archive.Files {
				files[f.Name] = f.Data
			}

			cfg, err := config.Parse(files["bindweld.yaml"], "bindweld.yaml")
			if err != nil {
				t.Fatalf("parsing fixture config: %v", err)
			}

			ctx := runPipeline(cfg, string(files["bindings.rs"]))

			if wantCode, isErrCase := files["error"]; isErrCase {
				if !ctx.Failed() {
					t.Fatalf("expected error %s, got success:\n%s", wantCode, ctx.Output)
				}
				code := diagnostics.ErrorCode(strings.TrimSpace(string(wantCode)))
				if ctx.Errors[0].Code != code {
					t.Errorf("error code = %s (%s), want %s", ctx.Errors[0].Code, ctx.Errors[0].Message, code)
				}
				if ctx.Output != nil {
					t.Error("no output may be produced on failure")
				}
				return
			}

			if ctx.Failed() {
				t.Fatalf("pipeline failed: %v", ctx.Errors[0])
			}
			got := strings.TrimRight(string(ctx.Output), "\n")
			want := strings.TrimRight(string(files["expected"]), "\n")
			if got != want {
				t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
			}

			// Regenerating from the same input must be byte-identical.
			again := runPipeline(cfg, string(files["bindings.rs"]))
			if !bytes.Equal(ctx.Output, again.Output) {
				t.Error("two runs over the same input produced different output")
			}
		})
	}
}

func runPipeline(cfg *config.Config, source string) *pipeline.PipelineContext {
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&locator.LocatorProcessor{Path: cfg.ModulePath},
		&transform.TransformProcessor{Prefix: cfg.ParamPrefix},
		&emit.EmitProcessor{Emitter: emit.Emitter{
			UsePath:    cfg.UsePath,
			CallPrefix: cfg.CallPrefix(),
			Marker:     cfg.Marker,
			ScopeOpen:  cfg.ScopeOpen,
			ScopeClose: cfg.ScopeClose,
			ContextArg: cfg.ContextArg,
		}},
	)
	return p.Run(&pipeline.PipelineContext{
		FilePath:   cfg.Input,
		SourceCode: source,
	})
}

// Command bindweld regenerates the host framework's command file from the
// binding generator's output: it parses the generated bindings, locates the
// configured module, rewrites each qualifying function signature and writes
// the synthesized commands, replacing the previous output wholesale.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bindweld/bindweld/internal/config"
	"github.com/bindweld/bindweld/internal/contract"
	"github.com/bindweld/bindweld/internal/diagnostics"
	"github.com/bindweld/bindweld/internal/emit"
	"github.com/bindweld/bindweld/internal/lexer"
	"github.com/bindweld/bindweld/internal/locator"
	"github.com/bindweld/bindweld/internal/parser"
	"github.com/bindweld/bindweld/internal/pipeline"
	"github.com/bindweld/bindweld/internal/token"
	"github.com/bindweld/bindweld/internal/transform"
	"github.com/bindweld/bindweld/internal/writeout"
)

func main() {
	configPath := flag.String("config", "bindweld.yaml", "path to the build configuration")
	verbose := flag.Bool("v", false, "report skipped bindings and generation stats")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", paint(err.Error()))
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return diagnostics.NewError(diagnostics.ErrX001, token.Token{}, "%v", err)
	}

	if cfg.Contract != "" {
		if err := contract.Verify(cfg.Contract); err != nil {
			return diagnostics.NewError(diagnostics.ErrC001, token.Token{}, "%v", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "bindweld: data contract %s ok\n", cfg.Contract)
		}
	}

	source, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading bindings: %w", err)
	}

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

	ctx := p.Run(&pipeline.PipelineContext{
		FilePath:   cfg.Input,
		SourceCode: string(source),
	})

	if ctx.Failed() {
		for _, diagErr := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "%s\n", paint(diagErr.Error()))
		}
		return fmt.Errorf("generation failed with %d error(s), output not written", len(ctx.Errors))
	}

	if err := writeout.Write(cfg.Output, ctx.Output, cfg.Formatter); err != nil {
		return diagnostics.NewError(diagnostics.ErrW001, token.Token{}, "%v", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "bindweld: %d command(s) written to %s, %d context-free binding(s) skipped\n",
			len(ctx.Commands), cfg.Output, ctx.Skipped)
	}
	return nil
}

// paint colors a message red when stderr is a terminal.
func paint(s string) string {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return s
	}
	return "\033[31m" + s + "\033[39m"
}

// Package config parses the bindweld.yaml build configuration.
//
// The configuration is a literal per-build constant: it names the generated
// bindings file, the module path inside it, and the output file, plus the
// conventions of the binding generator (parameter prefix, dispatch marker,
// interpreter-scope expressions). Nothing is discovered at runtime.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bindweld.yaml configuration.
type Config struct {
	// Input is the path of the generated bindings file to transform.
	Input string `yaml:"input"`

	// Output is the path of the command file to write. The file is fully
	// regenerated on every build; the previous contents are replaced only
	// after generation succeeds.
	Output string `yaml:"output"`

	// ModulePath is the ordered list of nested module names inside the
	// input file where the binding declarations live.
	ModulePath []string `yaml:"module_path"`

	// ParamPrefix is the marker the generator puts on public parameter
	// names. It is stripped best-effort; unprefixed names pass through.
	ParamPrefix string `yaml:"param_prefix,omitempty"`

	// Marker is the attribute line identifying an emitted function as a
	// dispatchable command.
	Marker string `yaml:"marker,omitempty"`

	// ScopeOpen and ScopeClose delimit the serialized interpreter-access
	// scope every command body runs in.
	ScopeOpen  string `yaml:"scope_open,omitempty"`
	ScopeClose string `yaml:"scope_close,omitempty"`

	// ContextArg is the name of the re-acquired context handle inside the
	// scope, passed as the first argument of the original binding.
	ContextArg string `yaml:"context_arg,omitempty"`

	// UsePath is the import line emitted at the top of the output file.
	// When empty it is derived from ModulePath per the generator's default
	// output location.
	UsePath string `yaml:"use_path,omitempty"`

	// Formatter is the re-formatter argv run on the generated file before
	// it replaces the previous output. An explicit empty list disables
	// formatting.
	Formatter []string `yaml:"formatter,omitempty"`

	// Contract is an optional path to a compiled data-contract descriptor
	// set that must exist and link before generation runs.
	Contract string `yaml:"contract,omitempty"`
}

// Defaults matching the binding generator's convention.
const (
	DefaultParamPrefix = "p_"
	DefaultMarker      = "#[tauri::command]"
	DefaultScopeOpen   = "pyo3::Python::with_gil(|py| {"
	DefaultScopeClose  = "})"
	DefaultContextArg  = "py"
)

// DefaultFormatter is applied when the formatter key is absent.
var DefaultFormatter = []string{"rustfmt"}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, path)
}

// Parse parses configuration data, applies defaults and validates.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	// Distinguish "formatter absent" (default) from "formatter: []"
	// (disabled) by probing for the key first.
	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if cfg.ParamPrefix == "" {
		cfg.ParamPrefix = DefaultParamPrefix
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.ScopeOpen == "" {
		cfg.ScopeOpen = DefaultScopeOpen
	}
	if cfg.ScopeClose == "" {
		cfg.ScopeClose = DefaultScopeClose
	}
	if cfg.ContextArg == "" {
		cfg.ContextArg = DefaultContextArg
	}
	if cfg.UsePath == "" && len(cfg.ModulePath) > 0 {
		cfg.UsePath = "crate::gen::py_bindings::" + strings.Join(cfg.ModulePath, "::")
	}
	if _, present := probe["formatter"]; !present {
		cfg.Formatter = DefaultFormatter
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Input == "" {
		return fmt.Errorf("%s: input is required", path)
	}
	if c.Output == "" {
		return fmt.Errorf("%s: output is required", path)
	}
	if len(c.ModulePath) == 0 {
		return fmt.Errorf("%s: module_path must name at least one module", path)
	}
	for _, seg := range c.ModulePath {
		if seg == "" {
			return fmt.Errorf("%s: module_path contains an empty segment", path)
		}
	}
	return nil
}

// CallPrefix is the qualifier for the original binding in emitted calls:
// the last module-path segment.
func (c *Config) CallPrefix() string {
	return c.ModulePath[len(c.ModulePath)-1]
}

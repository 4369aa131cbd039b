package envfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format      dumpFormat
	indent      string // Indentation for JSON output (default: "  ")
	withSources bool   // Include source attribution (text format only)
}

// AsJSON outputs the configuration as JSON instead of text.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs the configuration as YAML instead of text.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs the configuration as TOML instead of text.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output. Default is two spaces.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// WithSources includes source attribution for each key in the text output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// Dump writes a human-readable view of the store's keys as each currently
// resolves, so a process-first strategy shows process values shadowing
// store entries. Text format preserves store order; the structured formats
// order keys per their marshaler.
func (e *Environment) Dump(w io.Writer, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ", // Default indent
	}
	for _, opt := range opts {
		opt(&config)
	}

	if config.format == formatText {
		return e.dumpAsText(w, config)
	}
	return e.dumpStructured(w, config)
}

// dumpAsText outputs one "key: value" line per store key, in order.
func (e *Environment) dumpAsText(w io.Writer, config dumpConfig) error {
	for _, key := range e.store.keys {
		value, source, ok := e.Resolve(key)
		if !ok {
			continue
		}

		line := fmt.Sprintf("%s: %s", key, value.String())
		if config.withSources {
			line += fmt.Sprintf(" (source: %s)", source)
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

// dumpStructured outputs the resolved values as JSON, YAML or TOML.
func (e *Environment) dumpStructured(w io.Writer, config dumpConfig) error {
	resolved := make(map[string]any, e.store.Len())
	for _, key := range e.store.keys {
		if value, _, ok := e.Resolve(key); ok {
			resolved[key] = value.native()
		}
	}

	var data []byte
	var err error
	switch config.format {
	case formatJSON:
		if config.indent != "" {
			data, err = json.MarshalIndent(resolved, "", config.indent)
		} else {
			data, err = json.Marshal(resolved)
		}
		if err == nil {
			data = append(data, '\n')
		}
	case formatYAML:
		data, err = yaml.Marshal(resolved)
	case formatTOML:
		data, err = toml.Marshal(resolved)
	}
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Config holds tool configuration loaded from .styletools.yaml.
type Config struct {
	TargetPrefix string                   `yaml:"target_prefix" json:"target_prefix,omitempty"`
	Formatters   map[FormatterKind]string `yaml:"formatters"    json:"formatters,omitempty"`
	CompileDB    CompileDBConfig          `yaml:"compiledb"     json:"compiledb,omitempty"`
}

// CompileDBConfig configures compilation database assembly.
type CompileDBConfig struct {
	Bazel  string `yaml:"bazel"  json:"bazel,omitempty"`
	Output string `yaml:"output" json:"output,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		TargetPrefix: DefaultTargetPrefix,
		CompileDB:    CompileDBConfig{Bazel: "bazel"},
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.TargetPrefix == "" {
		c.TargetPrefix = def.TargetPrefix
	}
	if c.CompileDB.Bazel == "" {
		c.CompileDB.Bazel = def.CompileDB.Bazel
	}
	return c
}

// PlanOptions builds planner options from the config, applying binary overrides.
func (c Config) PlanOptions(modifiedOnly bool) PlanOptions {
	opts := DefaultPlanOptions(modifiedOnly)
	if c.TargetPrefix != "" {
		opts.TargetPrefix = c.TargetPrefix
	}
	for kind, bin := range c.Formatters {
		if f, ok := opts.Formatters[kind]; ok {
			f.Binary = bin
			opts.Formatters[kind] = f
		}
	}
	return opts
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	for kind, bin := range c.Formatters {
		if !slices.Contains(ValidFormatterKinds, kind) {
			valid := make([]string, len(ValidFormatterKinds))
			for i, k := range ValidFormatterKinds {
				valid[i] = string(k)
			}
			return fmt.Errorf("unknown formatter %q (valid: %s)", kind, strings.Join(valid, ", "))
		}
		if strings.TrimSpace(bin) == "" {
			return fmt.Errorf("formatter %q has an empty binary", kind)
		}
	}
	if strings.Contains(strings.Trim(c.TargetPrefix, "/"), "/") {
		return fmt.Errorf("target_prefix %q must be a single path segment", c.TargetPrefix)
	}
	return nil
}

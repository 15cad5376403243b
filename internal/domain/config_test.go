package domain_test

import (
	"testing"

	"github.com/cppgm/styletools/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "b", cfg.TargetPrefix)
	assert.Equal(t, "bazel", cfg.CompileDB.Bazel)
	assert.Empty(t, cfg.CompileDB.Output)
	assert.Nil(t, cfg.Formatters)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := domain.Config{CompileDB: domain.CompileDBConfig{Output: "db.json"}}.WithDefaults()
	assert.Equal(t, "b", cfg.TargetPrefix)
	assert.Equal(t, "bazel", cfg.CompileDB.Bazel)
	assert.Equal(t, "db.json", cfg.CompileDB.Output)

	cfg = domain.Config{TargetPrefix: "new", CompileDB: domain.CompileDBConfig{Bazel: "bazelisk"}}.WithDefaults()
	assert.Equal(t, "new", cfg.TargetPrefix)
	assert.Equal(t, "bazelisk", cfg.CompileDB.Bazel)
}

func TestConfig_PlanOptions(t *testing.T) {
	cfg := domain.Config{
		TargetPrefix: "new",
		Formatters:   map[domain.FormatterKind]string{domain.FormatterYAPF: "/opt/bin/yapf"},
	}
	opts := cfg.PlanOptions(true)
	assert.True(t, opts.ModifiedOnly)
	assert.Equal(t, "new", opts.TargetPrefix)
	assert.Equal(t, "/opt/bin/yapf", opts.Formatters[domain.FormatterYAPF].Binary)
	assert.Equal(t, "clang-format", opts.Formatters[domain.FormatterClangFormat].Binary)

	// Overrides must not leak into the defaults.
	assert.Equal(t, "yapf", domain.DefaultFormatters()[domain.FormatterYAPF].Binary)
}

func TestConfig_ValidateUnknownFormatter(t *testing.T) {
	cfg := domain.Config{Formatters: map[domain.FormatterKind]string{"gofmt": "gofmt"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown formatter "gofmt"`)
	assert.Contains(t, err.Error(), "clang-format, yapf")
}

func TestConfig_ValidateEmptyBinary(t *testing.T) {
	cfg := domain.Config{Formatters: map[domain.FormatterKind]string{domain.FormatterClangFormat: "  "}}
	assert.Error(t, cfg.Validate())
}

func TestConfig_ValidateTargetPrefix(t *testing.T) {
	assert.NoError(t, domain.Config{TargetPrefix: "b/"}.Validate())
	assert.Error(t, domain.Config{TargetPrefix: "a/b"}.Validate())
}

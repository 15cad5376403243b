package application_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppgm/styletools/internal/adapters/outbound/linediff"
	"github.com/cppgm/styletools/internal/application"
	"github.com/cppgm/styletools/internal/domain"
)

const tokenFixtures = "../../testdata/tokens"

func TestCompareService_EquivalentStreams(t *testing.T) {
	svc := application.NewCompareService(linediff.New())

	cmp, err := svc.CompareFiles(filepath.Join(tokenFixtures, "ref.txt"), filepath.Join(tokenFixtures, "same.txt"))
	require.NoError(t, err)
	assert.False(t, cmp.Differs)
	assert.Empty(t, cmp.Lines)
}

func TestCompareService_DifferentStreams(t *testing.T) {
	svc := application.NewCompareService(linediff.New())
	from := filepath.Join(tokenFixtures, "ref.txt")
	to := filepath.Join(tokenFixtures, "changed.txt")

	cmp, err := svc.CompareFiles(from, to)
	require.NoError(t, err)
	assert.True(t, cmp.Differs)
	assert.Equal(t, []string{
		"--- " + from,
		"+++ " + to,
		"-pp-number 2 42",
		"+pp-number 2 43",
	}, cmp.Lines)
}

func TestCompareService_InMemory(t *testing.T) {
	svc := application.NewCompareService(linediff.New())
	from := domain.TokenStream{Name: "pptoken", Lines: []string{"identifier 1 a\n", "new-line 0\n", "eof\n"}}
	to := domain.TokenStream{Name: "pptok", Lines: []string{"identifier 1 a\n", "eof\n"}}

	cmp := svc.Compare(from, to)
	assert.True(t, cmp.Differs)
	assert.Equal(t, []string{"--- pptoken", "+++ pptok", "-new-line"}, cmp.Lines)
}

func TestCompareService_MissingFile(t *testing.T) {
	svc := application.NewCompareService(linediff.New())
	_, err := svc.CompareFiles(filepath.Join(tokenFixtures, "ref.txt"), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestReadLines(t *testing.T) {
	lines, err := application.ReadLines(strings.NewReader("a 1\nb 2\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a 1\n", "b 2\n", "c"}, lines)

	lines, err = application.ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

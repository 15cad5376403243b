package linediff_test

import (
	"testing"

	"github.com/cppgm/styletools/internal/adapters/outbound/linediff"
	"github.com/stretchr/testify/assert"
)

func TestUnifiedLines_Identical(t *testing.T) {
	a := []string{"identifier 1 x", "new-line", "eof"}
	assert.Empty(t, linediff.New().UnifiedLines(a, a, "a", "b"))
}

func TestUnifiedLines_Replacement(t *testing.T) {
	a := []string{"identifier 1 x", "new-line", "eof"}
	b := []string{"identifier 1 y", "new-line", "eof"}

	got := linediff.New().UnifiedLines(a, b, "ref.txt", "out.txt")
	assert.Equal(t, []string{
		"--- ref.txt",
		"+++ out.txt",
		"@@ -1,3 +1,3 @@",
		"-identifier 1 x",
		"+identifier 1 y",
		" new-line",
		" eof",
	}, got)
}

func TestUnifiedLines_InsertAndDelete(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "c", "d"}

	got := linediff.New().UnifiedLines(a, b, "from", "to")
	assert.Equal(t, []string{
		"--- from",
		"+++ to",
		"@@ -1,3 +1,3 @@",
		" a",
		"-b",
		" c",
		"+d",
	}, got)
}

func TestUnifiedLines_SeparateGroups(t *testing.T) {
	a := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	b := append([]string{}, a...)
	b[0] = "one"
	b[11] = "twelve"

	got := linediff.New().UnifiedLines(a, b, "from", "to")
	assert.Contains(t, got, "@@ -1,4 +1,4 @@")
	assert.Contains(t, got, "@@ -9,4 +9,4 @@")
	assert.Contains(t, got, "-1")
	assert.Contains(t, got, "+twelve")
}

func TestUnifiedLines_EmptySide(t *testing.T) {
	got := linediff.New().UnifiedLines(nil, []string{"eof"}, "from", "to")
	assert.Equal(t, []string{"--- from", "+++ to", "@@ -0,0 +1 @@", "+eof"}, got)
}

package domain

import (
	"errors"
	"strings"
)

const (
	// KindWhitespaceSequence lines are dropped before comparison.
	KindWhitespaceSequence = "whitespace-sequence"
	// KindNewLine lines are compared as the bare literal "new-line".
	KindNewLine = "new-line"
)

// ErrStreamsDiffer is returned when two token streams are not equivalent.
var ErrStreamsDiffer = errors.New("token streams differ")

// TokenStream is the line-oriented output of a tokenizer run.
type TokenStream struct {
	Name  string
	Lines []string
}

// TokenKind returns the kind field of a token line: the text before the first space.
func TokenKind(line string) string {
	line = strings.TrimRight(line, "\r\n")
	kind, _, _ := strings.Cut(line, " ")
	return kind
}

// NormalizeTokens drops whitespace-sequence lines and canonicalizes new-line lines.
// Other lines are kept verbatim without their line terminator.
func NormalizeTokens(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch TokenKind(line) {
		case KindWhitespaceSequence:
			continue
		case KindNewLine:
			out = append(out, KindNewLine)
		default:
			out = append(out, strings.TrimRight(line, "\r\n"))
		}
	}
	return out
}

// Comparison is the outcome of comparing two normalized token streams.
type Comparison struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Lines   []string `json:"lines"`
	Differs bool     `json:"differs"`
}

// Added reports whether a diff line is an addition (including the "+++" header).
func Added(line string) bool { return strings.HasPrefix(line, "+") }

// Removed reports whether a diff line is a removal (including the "---" header).
func Removed(line string) bool { return strings.HasPrefix(line, "-") }

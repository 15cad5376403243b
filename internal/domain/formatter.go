package domain

import (
	"fmt"
	"path"
	"strings"

	"github.com/kballard/go-shellquote"
)

// FormatterKind identifies one of the supported formatter families.
type FormatterKind string

const (
	FormatterClangFormat FormatterKind = "clang-format"
	FormatterYAPF        FormatterKind = "yapf"
)

// ValidFormatterKinds enumerates all supported formatter families.
var ValidFormatterKinds = []FormatterKind{FormatterClangFormat, FormatterYAPF}

// RangeSyntax selects how a formatter spells a line range on its command line.
type RangeSyntax int

const (
	RangeColon  RangeSyntax = iota // --lines=10:14
	RangeHyphen                    // --lines=10-14
)

// Token renders r as a single --lines argument.
func (s RangeSyntax) Token(r LineRange) string {
	first, last := r.Inclusive()
	sep := ":"
	if s == RangeHyphen {
		sep = "-"
	}
	return fmt.Sprintf("--lines=%d%s%d", first, sep, last)
}

// Formatter describes how to invoke one formatter family in place.
type Formatter struct {
	Kind        FormatterKind
	Binary      string
	InPlaceFlag string
	Syntax      RangeSyntax
}

// DefaultFormatters returns the built-in formatter table.
func DefaultFormatters() map[FormatterKind]Formatter {
	return map[FormatterKind]Formatter{
		FormatterClangFormat: {Kind: FormatterClangFormat, Binary: "clang-format", InPlaceFlag: "-i", Syntax: RangeColon},
		FormatterYAPF:        {Kind: FormatterYAPF, Binary: "yapf", InPlaceFlag: "-i", Syntax: RangeHyphen},
	}
}

// FileTypeRules maps a file extension (case-sensitive, no leading dot) to its formatter family.
type FileTypeRules map[string]FormatterKind

// DefaultFileTypeRules returns the static extension table.
func DefaultFileTypeRules() FileTypeRules {
	rules := FileTypeRules{"py": FormatterYAPF}
	for _, ext := range []string{"cc", "cpp", "C", "c", "h", "hpp", "hh", "ipp", "java"} {
		rules[ext] = FormatterClangFormat
	}
	return rules
}

// Lookup returns the formatter family for ext.
func (r FileTypeRules) Lookup(ext string) (FormatterKind, bool) {
	kind, ok := r[ext]
	return kind, ok
}

// Extension returns the extension of p without its leading dot, or "" if p has none.
// Dotfiles such as ".clang-format" count as having no extension.
func Extension(p string) string {
	base := path.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}

// FormatCommand is one formatter invocation: program name followed by its arguments.
type FormatCommand []string

// String renders the command as a single shell-quoted line.
func (c FormatCommand) String() string {
	return shellquote.Join(c...)
}

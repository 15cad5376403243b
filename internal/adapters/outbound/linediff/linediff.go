package linediff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines matches the default of `diff -u`.
const contextLines = 3

// Differ implements domain.LineDiffer using go-difflib's sequence matcher.
type Differ struct {
	Context int
}

func New() *Differ {
	return &Differ{Context: contextLines}
}

// UnifiedLines returns the unified diff of a and b, one output line per element.
// Inputs are compared as given; neither the inputs nor the output carry line terminators.
// Identical inputs produce no lines at all, not even the file headers.
func (d *Differ) UnifiedLines(a, b []string, fromName, toName string) []string {
	groups := difflib.NewMatcher(a, b).GetGroupedOpCodes(d.Context)
	if len(groups) == 0 {
		return nil
	}

	out := []string{"--- " + fromName, "+++ " + toName}
	for _, g := range groups {
		first, last := g[0], g[len(g)-1]
		out = append(out, fmt.Sprintf("@@ -%s +%s @@",
			formatRange(first.I1, last.I2), formatRange(first.J1, last.J2)))

		for _, op := range g {
			if op.Tag == 'e' {
				for _, line := range a[op.I1:op.I2] {
					out = append(out, " "+line)
				}
				continue
			}
			if op.Tag == 'r' || op.Tag == 'd' {
				for _, line := range a[op.I1:op.I2] {
					out = append(out, "-"+line)
				}
			}
			if op.Tag == 'r' || op.Tag == 'i' {
				for _, line := range b[op.J1:op.J2] {
					out = append(out, "+"+line)
				}
			}
		}
	}
	return out
}

// formatRange renders a hunk range in unified diff notation.
func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start
	switch {
	case length == 1:
		return fmt.Sprintf("%d", beginning)
	case length == 0:
		return fmt.Sprintf("%d,0", beginning-1)
	default:
		return fmt.Sprintf("%d,%d", beginning, length)
	}
}

package domain

import "fmt"

// UnifiedDiff is a parsed unified diff: one FilePatch per file section, in input order.
type UnifiedDiff struct {
	Patches []FilePatch `json:"patches"`
}

// FilePatch holds the headers and hunks of one file section of a unified diff.
type FilePatch struct {
	SourcePath string `json:"source_path"`
	TargetPath string `json:"target_path"`
	Hunks      []Hunk `json:"hunks"`
}

// Hunk is one contiguous block of changes, positioned in the new version of the file.
type Hunk struct {
	TargetStart  int `json:"target_start"`
	TargetLength int `json:"target_length"`
}

// Range returns the half-open line interval [TargetStart, TargetStart+TargetLength).
func (h Hunk) Range() LineRange {
	return LineRange{Start: h.TargetStart, End: h.TargetStart + h.TargetLength}
}

// LineRange is a half-open interval of 1-based line numbers.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the range covers no lines.
func (r LineRange) Empty() bool { return r.End <= r.Start }

// Inclusive returns the first and last line of the range as formatters expect them.
// Empty ranges collapse onto the single line at Start, and line numbers never drop below 1.
func (r LineRange) Inclusive() (first, last int) {
	first = max(r.Start, 1)
	last = max(r.End-1, first)
	return first, last
}

// ParseError reports diff text that is not a well-formed unified diff.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing unified diff: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

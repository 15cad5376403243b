package domain

import "strings"

// DefaultTargetPrefix is the path segment git puts in front of every target file.
const DefaultTargetPrefix = "b"

// PlanOptions controls how a diff is turned into formatter commands.
type PlanOptions struct {
	// ModifiedOnly restricts each command to the hunks of its file.
	ModifiedOnly bool
	// TargetPrefix is stripped from target paths; empty disables stripping.
	TargetPrefix string
	Formatters   map[FormatterKind]Formatter
	Rules        FileTypeRules
}

// DefaultPlanOptions returns options using the built-in formatter tables.
func DefaultPlanOptions(modifiedOnly bool) PlanOptions {
	return PlanOptions{
		ModifiedOnly: modifiedOnly,
		TargetPrefix: DefaultTargetPrefix,
		Formatters:   DefaultFormatters(),
		Rules:        DefaultFileTypeRules(),
	}
}

// SkipReason explains why a file section produced no command.
type SkipReason string

const (
	SkipNoExtension      SkipReason = "no extension"
	SkipUnknownExtension SkipReason = "unsupported extension"
)

// SkippedPatch records a file section that was left out of a plan.
type SkippedPatch struct {
	Path   string     `json:"path"`
	Reason SkipReason `json:"reason"`
}

// Plan is the ordered set of commands derived from one diff.
type Plan struct {
	Commands []FormatCommand `json:"commands"`
	Skipped  []SkippedPatch  `json:"skipped,omitempty"`
}

// Lines renders every command as a shell-quoted line.
func (p *Plan) Lines() []string {
	lines := make([]string, 0, len(p.Commands))
	for _, c := range p.Commands {
		lines = append(lines, c.String())
	}
	return lines
}

// PlanCommands builds one command per formattable file of d, in diff order.
// It performs no I/O.
func PlanCommands(d *UnifiedDiff, opts PlanOptions) *Plan {
	plan := &Plan{Commands: []FormatCommand{}}
	for _, fp := range d.Patches {
		file := StripTargetPrefix(fp.TargetPath, opts.TargetPrefix)

		ext := Extension(file)
		if ext == "" {
			plan.Skipped = append(plan.Skipped, SkippedPatch{Path: file, Reason: SkipNoExtension})
			continue
		}
		kind, ok := opts.Rules.Lookup(ext)
		if !ok {
			plan.Skipped = append(plan.Skipped, SkippedPatch{Path: file, Reason: SkipUnknownExtension})
			continue
		}
		f, ok := opts.Formatters[kind]
		if !ok {
			plan.Skipped = append(plan.Skipped, SkippedPatch{Path: file, Reason: SkipUnknownExtension})
			continue
		}

		cmd := FormatCommand{f.Binary, f.InPlaceFlag, file}
		if opts.ModifiedOnly {
			for _, h := range fp.Hunks {
				cmd = append(cmd, f.Syntax.Token(h.Range()))
			}
		}
		plan.Commands = append(plan.Commands, cmd)
	}
	return plan
}

// StripTargetPrefix removes a single leading "<prefix>/" segment from p.
// Paths without that segment are returned unchanged.
func StripTargetPrefix(p, prefix string) string {
	if prefix == "" {
		return p
	}
	if rest, ok := strings.CutPrefix(p, strings.TrimSuffix(prefix, "/")+"/"); ok {
		return rest
	}
	return p
}

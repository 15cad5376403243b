package domain

import (
	"context"
	"io"
)

// DiffParser turns unified diff text into its file sections.
type DiffParser interface {
	Parse(text string) (*UnifiedDiff, error)
}

// RevisionDiffer produces the unified diff a single revision introduced.
type RevisionDiffer interface {
	RevisionDiff(repoPath, rev string) (string, error)
}

// CommandRunner runs a formatter command to completion.
// A non-zero exit status is not an error; failing to start the process is.
type CommandRunner interface {
	Run(ctx context.Context, cmd FormatCommand) error
}

// LineDiffer computes a unified line diff and returns its lines without terminators.
type LineDiffer interface {
	UnifiedLines(a, b []string, fromName, toName string) []string
}

// BuildQuerier answers questions about the build workspace.
type BuildQuerier interface {
	Info(ctx context.Context) (BuildInfo, error)
}

// RecordStore reads compile records and writes compilation databases.
type RecordStore interface {
	Find(pattern string) ([]string, error)
	Load(path string) (CompileRecord, error)
	Write(path string, db []CompileRecord) error
	Encode(w io.Writer, db []CompileRecord) error
}

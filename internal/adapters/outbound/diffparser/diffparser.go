package diffparser

import (
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/cppgm/styletools/internal/domain"
)

// GoDiffParser implements domain.DiffParser using sourcegraph/go-diff.
type GoDiffParser struct{}

func New() *GoDiffParser {
	return &GoDiffParser{}
}

// Parse reads every file section of a unified diff. Blank input is an empty diff.
func (p *GoDiffParser) Parse(text string) (*domain.UnifiedDiff, error) {
	result := &domain.UnifiedDiff{}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff([]byte(text))
	if err != nil {
		return nil, &domain.ParseError{Err: err}
	}

	for _, fd := range fileDiffs {
		fp := domain.FilePatch{
			SourcePath: fd.OrigName,
			TargetPath: fd.NewName,
		}
		for _, h := range fd.Hunks {
			fp.Hunks = append(fp.Hunks, domain.Hunk{
				TargetStart:  int(h.NewStartLine),
				TargetLength: int(h.NewLines),
			})
		}
		result.Patches = append(result.Patches, fp)
	}
	return result, nil
}

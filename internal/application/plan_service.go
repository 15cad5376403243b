package application

import (
	"context"
	"fmt"

	"github.com/cppgm/styletools/internal/domain"
)

// PlanService turns unified diffs into formatter commands and optionally runs them.
type PlanService struct {
	parser    domain.DiffParser
	revisions domain.RevisionDiffer
	runner    domain.CommandRunner
}

// NewPlanService creates a PlanService. revisions and runner may be nil when
// revision input or execution is not needed.
func NewPlanService(parser domain.DiffParser, revisions domain.RevisionDiffer, runner domain.CommandRunner) *PlanService {
	return &PlanService{parser: parser, revisions: revisions, runner: runner}
}

// Plan parses diffText and derives one command per formattable file.
// A parse failure is returned as *domain.ParseError and yields no partial plan.
func (s *PlanService) Plan(diffText string, opts domain.PlanOptions) (*domain.Plan, error) {
	d, err := s.parser.Parse(diffText)
	if err != nil {
		return nil, err
	}
	return domain.PlanCommands(d, opts), nil
}

// PlanRevision plans the changes introduced by rev in the repository at repoPath.
func (s *PlanService) PlanRevision(repoPath, rev string, opts domain.PlanOptions) (*domain.Plan, error) {
	if s.revisions == nil {
		return nil, fmt.Errorf("revision input is not available")
	}
	text, err := s.revisions.RevisionDiff(repoPath, rev)
	if err != nil {
		return nil, fmt.Errorf("reading revision %s: %w", rev, err)
	}
	return s.Plan(text, opts)
}

// Execute runs the plan's commands one at a time, each to completion, in plan order.
// before, if non-nil, is called ahead of every command.
func (s *PlanService) Execute(ctx context.Context, plan *domain.Plan, before func(domain.FormatCommand)) error {
	if s.runner == nil {
		return fmt.Errorf("command execution is not available")
	}
	for _, cmd := range plan.Commands {
		if before != nil {
			before(cmd)
		}
		if err := s.runner.Run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

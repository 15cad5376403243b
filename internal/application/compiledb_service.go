package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cppgm/styletools/internal/domain"
)

// CompileDBService assembles compile_commands.json from the per-file records
// written by the compile-command action listener.
type CompileDBService struct {
	build domain.BuildQuerier
	store domain.RecordStore
}

func NewCompileDBService(build domain.BuildQuerier, store domain.RecordStore) *CompileDBService {
	return &CompileDBService{build: build, store: store}
}

// CompileDB is an assembled database and where it belongs.
type CompileDB struct {
	Info    domain.BuildInfo       `json:"info"`
	Path    string                 `json:"path"`
	Scanned int                    `json:"scanned"`
	Records []domain.CompileRecord `json:"records"`
}

// Collect queries the build, loads every record and builds the database in memory.
// output overrides the default location under the workspace root.
func (s *CompileDBService) Collect(ctx context.Context, output string) (*CompileDB, error) {
	info, err := s.build.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying build info: %w", err)
	}

	pattern := filepath.Join(info.BinDir, filepath.FromSlash(domain.CompileRecordGlob))
	paths, err := s.store.Find(pattern)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CompileRecord, 0, len(paths))
	for _, p := range paths {
		rec, err := s.store.Load(p)
		if err != nil {
			return nil, fmt.Errorf("loading record: %w", err)
		}
		records = append(records, rec)
	}

	db, err := domain.BuildCompileDatabase(records, info.ExecutionRoot)
	if err != nil {
		return nil, err
	}

	if output == "" {
		output = filepath.Join(info.Workspace, domain.CompileCommandsFile)
	}
	return &CompileDB{Info: info, Path: output, Scanned: len(paths), Records: db}, nil
}

// Assemble collects the database and writes it to its path.
func (s *CompileDBService) Assemble(ctx context.Context, output string) (*CompileDB, error) {
	db, err := s.Collect(ctx, output)
	if err != nil {
		return nil, err
	}
	if err := s.store.Write(db.Path, db.Records); err != nil {
		return nil, fmt.Errorf("writing %s: %w", db.Path, err)
	}
	return db, nil
}

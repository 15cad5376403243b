package records

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"

	"github.com/cppgm/styletools/internal/domain"
)

// FileStore implements domain.RecordStore on the local filesystem.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

// Find returns the files matching a glob pattern that may contain "**", sorted.
func (s *FileStore) Find(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(filepath.Clean(pattern))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load decodes one record file. A JSON null or {} yields an empty record.
func (s *FileStore) Load(path string) (domain.CompileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec domain.CompileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return rec, nil
}

// Write stores the database at path, creating parent directories as needed.
func (s *FileStore) Write(path string, db []domain.CompileRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f, db); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the database as JSON with sorted keys and four-space indentation.
func (s *FileStore) Encode(w io.Writer, db []domain.CompileRecord) error {
	if db == nil {
		db = []domain.CompileRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(db)
}

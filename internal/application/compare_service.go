package application

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cppgm/styletools/internal/domain"
)

// CompareService compares tokenizer outputs after normalizing away differences
// that do not matter to the tests: whitespace-sequence tokens and the new-line payload.
type CompareService struct {
	differ domain.LineDiffer
}

func NewCompareService(differ domain.LineDiffer) *CompareService {
	return &CompareService{differ: differ}
}

// Compare normalizes both streams and returns every added or removed line of
// their unified diff.
func (s *CompareService) Compare(from, to domain.TokenStream) *domain.Comparison {
	diff := s.differ.UnifiedLines(
		domain.NormalizeTokens(from.Lines),
		domain.NormalizeTokens(to.Lines),
		from.Name, to.Name,
	)

	result := &domain.Comparison{From: from.Name, To: to.Name, Lines: []string{}}
	for _, line := range diff {
		if domain.Added(line) || domain.Removed(line) {
			result.Lines = append(result.Lines, line)
		}
	}
	result.Differs = len(result.Lines) > 0
	return result
}

// CompareFiles reads both files and compares them.
func (s *CompareService) CompareFiles(fromPath, toPath string) (*domain.Comparison, error) {
	from, err := LoadTokenStream(fromPath)
	if err != nil {
		return nil, err
	}
	to, err := LoadTokenStream(toPath)
	if err != nil {
		return nil, err
	}
	return s.Compare(from, to), nil
}

// LoadTokenStream reads a tokenizer output file, keeping each line's terminator.
func LoadTokenStream(path string) (domain.TokenStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.TokenStream{}, err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return domain.TokenStream{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return domain.TokenStream{Name: path, Lines: lines}, nil
}

// ReadLines splits r into lines, each keeping its "\n". A final line without a
// terminator is kept as is.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

package vocabulary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=reader.go -destination=../mocks/vocabulary/mock_source.go -package=mock_vocabulary Source

// Source supplies a vocabulary set to a quiz session.
type Source interface {
	Load() (Set, error)
}

// FileSource loads a vocabulary set from a CSV or YAML file.
type FileSource struct {
	path string
}

// NewFileSource creates a file source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads the file, dispatching on its extension.
func (s *FileSource) Load() (Set, error) {
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".csv":
		return s.loadCSV()
	case ".yml", ".yaml":
		return s.loadYAML()
	default:
		return Set{}, fmt.Errorf("unsupported vocabulary file format %q", ext)
	}
}

// loadCSV reads a semicolon-delimited term;translation file.
// The first row is a header and is skipped.
func (s *FileSource) loadCSV() (Set, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	var entries []Entry
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Set{}, fmt.Errorf("failed to read vocabulary file %s: %w", s.path, err)
		}
		if row == 0 {
			continue
		}
		if len(record) < 2 {
			return Set{}, fmt.Errorf("row %d of %s has %d columns, want 2", row+1, s.path, len(record))
		}
		entries = append(entries, Entry{
			Term:        strings.TrimSpace(record[0]),
			Translation: strings.TrimSpace(record[1]),
		})
	}
	set, err := NewSet(entries)
	if err != nil {
		return Set{}, fmt.Errorf("invalid vocabulary file %s: %w", s.path, err)
	}
	return set, nil
}

// loadYAML reads a list of {term, translation} mappings.
func (s *FileSource) loadYAML() (Set, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to open vocabulary file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return Set{}, fmt.Errorf("failed to decode vocabulary file %s: %w", s.path, err)
	}
	set, err := NewSet(entries)
	if err != nil {
		return Set{}, fmt.Errorf("invalid vocabulary file %s: %w", s.path, err)
	}
	return set, nil
}

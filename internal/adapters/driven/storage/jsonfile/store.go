package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.VacancyStore = (*Store)(nil)
	_ driven.StoreWatcher = (*Store)(nil)
)

const indent = "    "

// Store is a JSON-file implementation of driven.VacancyStore.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
// The file is not touched until the first operation.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path: %w", domain.ErrInvalidInput)
	}
	return &Store{path: path}, nil
}

// Path returns the JSON file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns every stored vacancy, or an absent result if the file does not exist.
func (s *Store) Load(_ context.Context) (domain.StoreResult, error) {
	vacancies, exists, err := s.read()
	if err != nil {
		return domain.StoreResult{}, err
	}
	if !exists {
		return domain.AbsentResult(), nil
	}
	return domain.NewStoreResult(vacancies), nil
}

// MergeWrite appends vacancies not already present and rewrites the file.
// When the file does not exist the input is written as-is.
func (s *Store) MergeWrite(_ context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error) {
	if len(vacancies) == 0 {
		return domain.SaveResult{Status: domain.SaveNothingToSave, Path: s.path}, nil
	}

	existing, exists, err := s.read()
	if err != nil {
		return domain.SaveResult{}, err
	}

	if !exists {
		if err := s.write(vacancies); err != nil {
			return domain.SaveResult{}, err
		}
		logger.Debug("Created %s with %d vacancies", s.path, len(vacancies))
		return domain.SaveResult{
			Status: domain.SaveCreated,
			Added:  len(vacancies),
			Total:  len(vacancies),
			Path:   s.path,
		}, nil
	}

	merged, added := domain.MergeAppend(existing, vacancies)
	if err := s.write(merged); err != nil {
		return domain.SaveResult{}, err
	}
	logger.Debug("Merged %d new vacancies into %s", added, s.path)

	return domain.SaveResult{
		Status: domain.SaveMerged,
		Added:  added,
		Total:  len(merged),
		Path:   s.path,
	}, nil
}

// DeleteMatching removes every vacancy whose city, name or description
// contains substr, rewrites the file and returns what was kept.
func (s *Store) DeleteMatching(_ context.Context, substr string) (domain.StoreResult, error) {
	existing, exists, err := s.read()
	if err != nil {
		return domain.StoreResult{}, err
	}
	if !exists {
		return domain.AbsentResult(), nil
	}

	kept := domain.WithoutMentions(existing, substr)
	if err := s.write(kept); err != nil {
		return domain.StoreResult{}, err
	}
	logger.Debug("Deleted %d vacancies matching %q", len(existing)-len(kept), substr)

	return domain.NewStoreResult(kept), nil
}

// Find returns vacancies whose description contains substr or whose name
// or city equals substr.
func (s *Store) Find(_ context.Context, substr string) (domain.StoreResult, error) {
	existing, exists, err := s.read()
	if err != nil {
		return domain.StoreResult{}, err
	}
	if !exists {
		return domain.AbsentResult(), nil
	}
	return domain.NewStoreResult(domain.MatchingQuery(existing, substr)), nil
}

// read loads the file. exists is false when the file is missing.
func (s *Store) read() (vacancies []domain.Vacancy, exists bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Vacancy{}, true, nil
	}

	if err := json.Unmarshal(data, &vacancies); err != nil {
		return nil, true, fmt.Errorf("decoding %s: %w: %v", s.path, domain.ErrStoreCorrupt, err)
	}
	if vacancies == nil {
		vacancies = []domain.Vacancy{}
	}
	return vacancies, true, nil
}

// write replaces the file contents with vacancies.
func (s *Store) write(vacancies []domain.Vacancy) error {
	data, err := Encode(vacancies)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Encode renders vacancies as the store document: an indented JSON array
// with HTML characters and non-ASCII text left unescaped.
func Encode(vacancies []domain.Vacancy) ([]byte, error) {
	if vacancies == nil {
		vacancies = []domain.Vacancy{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(vacancies); err != nil {
		return nil, fmt.Errorf("encoding vacancies: %w", err)
	}
	return buf.Bytes(), nil
}

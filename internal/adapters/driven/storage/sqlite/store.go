package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Alina998/hh-project/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.VacancyStore = (*Store)(nil)

// Store is a SQLite implementation of driven.VacancyStore.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// row is a stored vacancy with its identity.
type row struct {
	id      string
	seq     int64
	vacancy domain.Vacancy
}

// NewStore creates a store for the database at path.
// The database is opened lazily; nothing is created until the first write.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path: %w", domain.ErrInvalidInput)
	}
	return &Store{path: path}, nil
}

// Close closes the database connection if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns every stored vacancy in insertion order.
func (s *Store) Load(ctx context.Context) (domain.StoreResult, error) {
	db, err := s.conn(false)
	if err != nil {
		return domain.StoreResult{}, err
	}
	if db == nil {
		return domain.AbsentResult(), nil
	}

	rows, err := selectAll(ctx, db)
	if err != nil {
		return domain.StoreResult{}, err
	}
	return domain.NewStoreResult(vacanciesOf(rows)), nil
}

// MergeWrite inserts vacancies not already stored.
// When the database does not exist yet the input is inserted as-is.
func (s *Store) MergeWrite(ctx context.Context, vacancies []domain.Vacancy) (domain.SaveResult, error) {
	if len(vacancies) == 0 {
		return domain.SaveResult{Status: domain.SaveNothingToSave, Path: s.path}, nil
	}

	existed := fileExists(s.path)
	db, err := s.conn(true)
	if err != nil {
		return domain.SaveResult{}, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.SaveResult{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	current, err := selectAll(ctx, tx)
	if err != nil {
		return domain.SaveResult{}, err
	}

	toInsert := vacancies
	status := domain.SaveCreated
	if existed {
		status = domain.SaveMerged
		merged, _ := domain.MergeAppend(vacanciesOf(current), vacancies)
		toInsert = merged[len(current):]
	}

	next := int64(1)
	if len(current) > 0 {
		next = current[len(current)-1].seq + 1
	}
	for i := range toInsert {
		if err := insert(ctx, tx, next+int64(i), toInsert[i]); err != nil {
			return domain.SaveResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.SaveResult{}, fmt.Errorf("committing: %w", err)
	}
	logger.Debug("SQLite %s: inserted %d vacancies", status, len(toInsert))

	return domain.SaveResult{
		Status: status,
		Added:  len(toInsert),
		Total:  len(current) + len(toInsert),
		Path:   s.path,
	}, nil
}

// DeleteMatching removes vacancies whose city, name or description contains
// substr and returns the rest.
func (s *Store) DeleteMatching(ctx context.Context, substr string) (domain.StoreResult, error) {
	db, err := s.conn(false)
	if err != nil {
		return domain.StoreResult{}, err
	}
	if db == nil {
		return domain.AbsentResult(), nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoreResult{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	current, err := selectAll(ctx, tx)
	if err != nil {
		return domain.StoreResult{}, err
	}

	kept := make([]domain.Vacancy, 0, len(current))
	for i := range current {
		if !current[i].vacancy.Mentions(substr) {
			kept = append(kept, current[i].vacancy)
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM vacancies WHERE id = ?", current[i].id); err != nil {
			return domain.StoreResult{}, fmt.Errorf("deleting vacancy: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.StoreResult{}, fmt.Errorf("committing: %w", err)
	}
	return domain.NewStoreResult(kept), nil
}

// Find returns vacancies whose description contains substr or whose name
// or city equals substr.
func (s *Store) Find(ctx context.Context, substr string) (domain.StoreResult, error) {
	res, err := s.Load(ctx)
	if err != nil || res.Absent() {
		return res, err
	}
	return domain.NewStoreResult(domain.MatchingQuery(res.Vacancies, substr)), nil
}

// conn returns the open database. When create is false and the file does
// not exist it returns a nil database and no error.
func (s *Store) conn(create bool) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}
	if !create && !fileExists(s.path) {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(db, migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.db = db
	return db, nil
}

// migrate runs all pending migrations.
func migrate(db *sql.DB, fsys embed.FS) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_create_vacancies.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func selectAll(ctx context.Context, q querier) ([]row, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, seq, name, city, salary_from, salary_to, url, description
		FROM vacancies
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying vacancies: %w", err)
	}
	defer rows.Close()

	var result []row
	for rows.Next() {
		var (
			r           row
			description sql.NullString
		)
		err := rows.Scan(
			&r.id, &r.seq,
			&r.vacancy.Name, &r.vacancy.City,
			&r.vacancy.Salary.From, &r.vacancy.Salary.To,
			&r.vacancy.URL, &description,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning vacancy: %w", err)
		}
		if description.Valid {
			d := description.String
			r.vacancy.Description = &d
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func insert(ctx context.Context, tx *sql.Tx, seq int64, v domain.Vacancy) error {
	var description sql.NullString
	if v.Description != nil {
		description = sql.NullString{String: *v.Description, Valid: true}
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO vacancies (id, seq, name, city, salary_from, salary_to, url, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), seq, v.Name, v.City, v.Salary.From, v.Salary.To, v.URL, description)
	if err != nil {
		return fmt.Errorf("inserting vacancy: %w", err)
	}
	return nil
}

func vacanciesOf(rows []row) []domain.Vacancy {
	out := make([]domain.Vacancy, len(rows))
	for i := range rows {
		out[i] = rows[i].vacancy
	}
	return out
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

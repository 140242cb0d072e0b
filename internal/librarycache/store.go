package librarycache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users clear the cache with 'setlist cache clear'.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Selection is one remembered title-to-document pick.
type Selection struct {
	TitleKey   string
	Path       string
	Uses       int64
	LastUsedAt time.Time
}

// Store manages selection history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'setlist cache clear' or delete the database)",
			ErrSchemaMismatch, version, schemaVersion)
	}

	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Record remembers that title resolved to path, bumping the use counter
// when the same pick recurs.
func (s *Store) Record(ctx context.Context, title, path string) error {
	key := NormalizeTitle(title)
	if key == "" {
		return errors.New("empty title")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO selections (title_key, path, uses, last_used_at)
         VALUES (?, ?, 1, ?)
         ON CONFLICT(title_key) DO UPDATE SET
             path = excluded.path,
             uses = CASE WHEN selections.path = excluded.path THEN selections.uses + 1 ELSE 1 END,
             last_used_at = excluded.last_used_at`,
		key,
		path,
		now,
	)
	if err != nil {
		return fmt.Errorf("record selection: %w", err)
	}
	return nil
}

// Lookup returns the remembered pick for title, or nil when the title has
// never been resolved.
func (s *Store) Lookup(ctx context.Context, title string) (*Selection, error) {
	key := NormalizeTitle(title)
	row := s.db.QueryRowContext(
		ctx,
		`SELECT title_key, path, uses, last_used_at FROM selections WHERE title_key = ?`,
		key,
	)
	sel, err := scanSelection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup selection: %w", err)
	}
	return sel, nil
}

// List returns all remembered selections, most recently used first.
func (s *Store) List(ctx context.Context) ([]*Selection, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT title_key, path, uses, last_used_at FROM selections ORDER BY last_used_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	var selections []*Selection
	for rows.Next() {
		sel, err := scanSelection(rows)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, rows.Err()
}

// Forget drops the remembered pick for title.
func (s *Store) Forget(ctx context.Context, title string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM selections WHERE title_key = ?`, NormalizeTitle(title))
	if err != nil {
		return false, fmt.Errorf("forget selection: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes all remembered selections.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM selections`)
	if err != nil {
		return 0, fmt.Errorf("clear selections: %w", err)
	}
	return res.RowsAffected()
}

func scanSelection(scanner interface{ Scan(dest ...any) error }) (*Selection, error) {
	var (
		titleKey    string
		path        string
		uses        int64
		lastUsedRaw string
	)
	if err := scanner.Scan(&titleKey, &path, &uses, &lastUsedRaw); err != nil {
		return nil, err
	}
	sel := &Selection{
		TitleKey: titleKey,
		Path:     path,
		Uses:     uses,
	}
	if t, err := time.Parse(time.RFC3339Nano, lastUsedRaw); err == nil {
		sel.LastUsedAt = t
	}
	return sel, nil
}

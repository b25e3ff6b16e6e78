// internal/wordsdb/db.go
//
// SQLite-backed word-list store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Importing and loading answer/guess lists.
//
// The store only holds dictionary data; no game history is written here.

package wordsdb

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

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// Kind selects which list a word belongs to.
type Kind string

const (
	KindAnswer Kind = "answer"
	KindGuess  Kind = "guess"
)

// ErrUnknownKind is returned for a Kind other than KindAnswer or KindGuess.
var ErrUnknownKind = errors.New("wordsdb: unknown word kind")

func (k Kind) valid() bool { return k == KindAnswer || k == KindGuess }

// Store wraps an open, migrated word database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) a SQLite database file and migrates it.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// openDB ensures the parent directory exists and configures busy timeout and WAL.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded migrations not yet listed in _migrations, each in
// its own transaction, in file name order.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	names, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		if applied[name] {
			continue
		}
		body, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := applyMigration(db, name, string(body)); err != nil {
			return err
		}
		log.Debug().Str("migration", name).Msg("wordsdb migration applied")
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT name FROM _migrations`)
	if err != nil {
		return nil, fmt.Errorf("query _migrations: %w", err)
	}
	defer rows.Close()

	done := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		done[name] = true
	}
	return done, rows.Err()
}

func applyMigration(db *sql.DB, name, body string) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.Exec(body); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	if _, err = tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("record %s: %w", name, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}

// Import inserts words of the given kind; words already present are ignored.
// Returns the number of rows actually added.
func (s *Store) Import(ctx context.Context, kind Kind, words []string) (int, error) {
	if !kind.valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, kind) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, w, string(kind))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		n, _ := res.RowsAffected()
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Load returns all words of the given kind in insertion order.
func (s *Store) Load(ctx context.Context, kind Kind) ([]string, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE kind=? ORDER BY rowid`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Count returns the number of stored words of the given kind.
func (s *Store) Count(ctx context.Context, kind Kind) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words WHERE kind=?`, string(kind)).Scan(&n)
	return n, err
}

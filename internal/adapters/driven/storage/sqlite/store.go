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
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
)

// documentKey is the fixed key under which the one background document
// is stored. The engine never tracks more than one document.
const documentKey = "background"

// Ensure Store implements the interfaces.
var (
	_ driven.DocumentSource = (*Store)(nil)
	_ driven.DocumentWriter = (*Store)(nil)
)

// Store is a SQLite-backed document source. The document body lives in
// a single fixed-key row; every Put stamps a fresh revision.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.backdrop/data/backdrop.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".backdrop", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "backdrop.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a document row is present.
func (s *Store) Exists(ctx context.Context) bool {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM document WHERE key = ?", documentKey).Scan(&one)
	return err == nil
}

// ReadText returns the stored document body.
func (s *Store) ReadText(ctx context.Context) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM document WHERE key = ?", documentKey).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("no document stored at key %q", documentKey)
		}
		return "", fmt.Errorf("reading document: %w", err)
	}
	return body, nil
}

// StatMeta returns the stored document's size and update time.
// Size is the body's byte length, matching what a file stat would report
// for the same UTF-8 content.
func (s *Store) StatMeta(ctx context.Context) (int64, time.Time, error) {
	var length int64
	var updatedAt time.Time
	err := s.db.QueryRowContext(ctx,
		"SELECT LENGTH(CAST(body AS BLOB)), updated_at FROM document WHERE key = ?",
		documentKey).Scan(&length, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, time.Time{}, fmt.Errorf("no document stored at key %q", documentKey)
		}
		return 0, time.Time{}, fmt.Errorf("statting document: %w", err)
	}
	return length, updatedAt, nil
}

// Describe returns a label for the source.
func (s *Store) Describe() string {
	return "sqlite:" + s.path
}

// Put replaces the document body and stamps a new UUID revision.
func (s *Store) Put(ctx context.Context, text string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO document (key, body, revision, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			body = excluded.body,
			revision = excluded.revision,
			updated_at = excluded.updated_at
	`, documentKey, text, uuid.NewString(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("storing document: %w", err)
	}
	return nil
}

// Clear removes the document row. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM document WHERE key = ?", documentKey); err != nil {
		return fmt.Errorf("clearing document: %w", err)
	}
	return nil
}

// Revision returns the identifier stamped by the latest Put, or ""
// when no document is stored.
func (s *Store) Revision(ctx context.Context) string {
	var revision string
	err := s.db.QueryRowContext(ctx,
		"SELECT revision FROM document WHERE key = ?", documentKey).Scan(&revision)
	if err != nil {
		return ""
	}
	return revision
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Package history persists a record of past launches so the TUI can show
// recent destinations and `gatectl history` can list them.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"gatectl/pkg/logging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const historySubsystem = "History"

// Launch is one recorded navigation.
type Launch struct {
	ID         int64
	Backend    string
	RawInput   string
	URL        string
	Target     string
	LaunchedAt string
}

// Store wraps the SQLite database holding the launch log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path and
// applies any pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		migrations = append(migrations, entry.Name())
	}
	sort.Strings(migrations)

	for _, migration := range migrations {
		version := strings.TrimSuffix(migration, ".sql")

		var exists bool
		if err := s.db.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = ?)
		`, version).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", version, err)
		}
		if exists {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + migration)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", migration, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %s: %w", version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to mark migration %s applied: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
		logging.Debug(historySubsystem, "applied migration %s", version)
	}

	return nil
}

// Record appends a launch to the log and returns its ID.
func (s *Store) Record(l Launch) (int64, error) {
	launchedAt := l.LaunchedAt
	if launchedAt == "" {
		launchedAt = time.Now().Format(time.RFC3339)
	}
	result, err := s.db.Exec(
		"INSERT INTO launches (backend, raw_input, url, target, launched_at) VALUES (?, ?, ?, ?, ?)",
		l.Backend, l.RawInput, l.URL, l.Target, launchedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record launch: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// Recent returns the most recent launches, newest first. A limit <= 0 means
// no limit.
func (s *Store) Recent(limit int) ([]Launch, error) {
	query := `
		SELECT id, backend, raw_input, url, target, launched_at
		FROM launches
		ORDER BY launched_at DESC, id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list launches: %w", err)
	}
	defer rows.Close()

	var launches []Launch
	for rows.Next() {
		var l Launch
		if err := rows.Scan(&l.ID, &l.Backend, &l.RawInput, &l.URL, &l.Target, &l.LaunchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		launches = append(launches, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate launches: %w", err)
	}
	return launches, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

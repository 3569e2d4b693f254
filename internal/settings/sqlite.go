package settings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/formatting-rotor/internal/logging/events"
)

const currentSchemaVersion = 1

// SQLiteStore persists settings in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	schema Schema
}

// NewSQLiteStore opens (creating when needed) the database at path.
func NewSQLiteStore(path string, schema Schema) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStore{db: db, path: path, schema: schema}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		version = 0
	}
	if version >= currentSchemaVersion {
		return nil
	}
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY NOT NULL,
			is_int INTEGER NOT NULL DEFAULT 0,
			value INTEGER NOT NULL
		);

		DELETE FROM schema_version;
		INSERT INTO schema_version (version) VALUES (1);
	`)
	return err
}

// ReadCurrentValues returns the schema defaults overridden by stored rows.
func (s *SQLiteStore) ReadCurrentValues() (Values, error) {
	values := s.schema.Defaults()

	rows, err := s.db.Query(`SELECT key, is_int, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			isInt int
			raw   int
		)
		if err := rows.Scan(&key, &isInt, &raw); err != nil {
			return nil, err
		}
		if isInt == 1 {
			values[key] = Int(raw)
		} else {
			values[key] = Bool(raw != 0)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	events.Store.Read(BackendSQLite, len(values))
	return values, nil
}

// WriteValues upserts values inside one transaction: all or nothing.
func (s *SQLiteStore) WriteValues(values Values) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, is_int, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET is_int = excluded.is_int, value = excluded.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, key := range values.Keys() {
		v := values[key]
		isInt := 0
		if v.IsInt() {
			isInt = 1
		}
		if _, err := stmt.Exec(key, isInt, v.AsInt()); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	events.Store.Write(BackendSQLite, len(values))
	return nil
}

func (s *SQLiteStore) DescribeValidation(key string) Validation {
	return s.schema.Validation(key)
}

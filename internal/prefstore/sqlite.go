package prefstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLite configuration constants.
const (
	// dirPermissions is the permission mode for the store directory.
	dirPermissions = 0750

	// filePermissions is the permission mode for the store file.
	filePermissions = 0600

	// busyTimeoutMs is the maximum time to wait for a database lock.
	busyTimeoutMs = 5000
)

// SQLite is a Store persisted in a single-table SQLite database. The schema
// mirrors the hierarchical namespace directly: one row per key, with the
// full `\`-joined key as the primary key.
type SQLite struct {
	db     *sql.DB
	path   string
	logger Logger
}

// OpenSQLite opens (creating if needed) the store database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL",
		path, busyTimeoutMs)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("creating prefs table: %w", err)
	}

	// Owner read/write only. Ignore error - file might not exist yet on
	// first run, permissions apply after the first write.
	_ = os.Chmod(path, filePermissions)

	return &SQLite{
		db:     db,
		path:   path,
		logger: noopLogger{},
	}, nil
}

// SetLogger sets the logger used to report backend failures.
func (s *SQLite) SetLogger(logger Logger) {
	s.logger = logger
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

// Path returns the filesystem path of the store database.
func (s *SQLite) Path() string {
	return s.path
}

// WriteString stores a string value under key.
func (s *SQLite) WriteString(key, value string) {
	s.set(key, value)
}

// WriteInt stores an integer value under key.
func (s *SQLite) WriteInt(key string, value int) {
	s.set(key, strconv.Itoa(value))
}

// ReadString returns the string stored under key, or def.
func (s *SQLite) ReadString(key, def string) string {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	return v
}

// ReadInt returns the integer stored under key, or def.
func (s *SQLite) ReadInt(key string, def int) int {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ReadDouble returns the float stored under key, or def.
func (s *SQLite) ReadDouble(key string, def float64) float64 {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// ReadBool returns true when the integer stored under key is non-zero.
func (s *SQLite) ReadBool(key string, def bool) bool {
	return s.ReadInt(key, boolToInt(def)) != 0
}

// DeleteKey removes a value, or a whole subtree when the key carries a
// trailing separator.
func (s *SQLite) DeleteKey(key string) {
	root, isTree := subtreeRoot(key)

	var err error
	if isTree {
		// substr comparison instead of LIKE: keys may contain LIKE
		// wildcard characters ('_' in control names).
		prefix := root + Sep
		_, err = s.db.Exec(
			`DELETE FROM prefs WHERE key = ? OR substr(key, 1, ?) = ?`,
			root, len(prefix), prefix)
	} else {
		_, err = s.db.Exec(`DELETE FROM prefs WHERE key = ?`, key)
	}
	if err != nil {
		s.logger.Error("prefstore delete failed", "key", key, "error", err)
	}
}

// MoveTree copies the subtree rooted at from onto to, then deletes the
// source. Copy and delete run in one transaction; this keeps a single
// renumbering step atomic, but sequences of moves remain best-effort.
func (s *SQLite) MoveTree(from, to string) {
	tx, err := s.db.Begin()
	if err != nil {
		s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
		return
	}
	defer tx.Rollback() //nolint:errcheck // No-op if committed

	prefix := from + Sep
	rows, err := tx.Query(
		`SELECT key, value FROM prefs WHERE key = ? OR substr(key, 1, ?) = ?`,
		from, len(prefix), prefix)
	if err != nil {
		s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
		return
	}

	type entry struct{ key, value string }
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.key, &e.value); err != nil {
			rows.Close() //nolint:errcheck // read-only cursor
			s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close() //nolint:errcheck // read-only cursor
		s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
		return
	}
	rows.Close() //nolint:errcheck // read-only cursor

	for _, e := range entries {
		target := to + e.key[len(from):]
		if _, err := tx.Exec(
			`INSERT INTO prefs (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			target, e.value); err != nil {
			s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
			return
		}
		if _, err := tx.Exec(`DELETE FROM prefs WHERE key = ?`, e.key); err != nil {
			s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("prefstore move failed", "from", from, "to", to, "error", err)
	}
}

func (s *SQLite) set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		s.logger.Error("prefstore write failed", "key", key, "error", err)
	}
}

func (s *SQLite) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("prefstore read failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

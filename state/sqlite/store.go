// Package sqlite provides a SQLite-backed contract state store.
package sqlite

import (
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"vsc_nft_drop/state"
	"vsc_nft_drop/state/sqlite/migrations"
)

// Store persists contract state in a single SQLite table.
type Store struct {
	sqlDB *sql.DB
}

var _ state.Store = (*Store)(nil)

// Open opens a SQLite state store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "run migrations")
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Get(key string) ([]byte, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("storage is not configured")
	}
	var value []byte
	err := s.sqlDB.QueryRow(
		`SELECT state_value FROM contract_state WHERE state_key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", key)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Commit applies all changes in one SQL transaction.
func (s *Store) Commit(changes []state.Change) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	if len(changes) == 0 {
		return nil
	}
	tx, err := s.sqlDB.Begin()
	if err != nil {
		return errors.Wrap(err, "begin commit")
	}
	now := time.Now().UTC().UnixMilli()
	for _, c := range changes {
		if c.Deleted {
			if _, err := tx.Exec(`DELETE FROM contract_state WHERE state_key = ?`, c.Key); err != nil {
				_ = tx.Rollback()
				return errors.Wrapf(err, "delete %s", c.Key)
			}
			continue
		}
		value := c.Value
		if value == nil {
			value = []byte{}
		}
		if _, err := tx.Exec(
			`INSERT INTO contract_state (state_key, state_value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(state_key) DO UPDATE SET state_value = excluded.state_value, updated_at = excluded.updated_at`,
			c.Key, value, now,
		); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "put %s", c.Key)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit state")
	}
	return nil
}

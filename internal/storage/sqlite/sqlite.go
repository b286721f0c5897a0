// Package sqlite persists the ledger blob in a one-row key-value table.
// It mirrors what a browser's local storage gives the original tool: a
// durable slot for one serialized document, with the upside of a real file
// format and WAL durability.
package sqlite

import (
	"database/sql"
	"errors"
	"time"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"dailyspend/internal/storage"
)

const ledgerKey = "expenses"

type sqliteStorage struct {
	db *sql.DB
}

func New(source string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, &storage.PersistenceError{Op: "open", Err: err}
	}

	// A single writer never needs more than one connection, and one
	// connection keeps :memory: databases stable across calls.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, &storage.PersistenceError{Op: "open", Err: err}
	}

	if err = applyMigrations(db); err != nil {
		return nil, &storage.PersistenceError{Op: "migrate", Err: err}
	}

	return &sqliteStorage{db: db}, nil
}

func (s *sqliteStorage) Load() ([]byte, bool, error) {
	var data []byte
	row := s.db.QueryRow("SELECT data FROM ledger WHERE key = ?", ledgerKey)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, &storage.PersistenceError{Op: "load", Err: err}
	}
	return data, true, nil
}

func (s *sqliteStorage) Save(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO ledger(key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ledgerKey, data, time.Now().Unix())
	if err != nil {
		return &storage.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

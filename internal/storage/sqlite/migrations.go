package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

func createMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)
	`)
	return err
}

var migrations = []struct {
	version int
	stmt    string
}{
	{
		version: 1,
		stmt: `CREATE TABLE IF NOT EXISTS ledger (
			key TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
	},
}

func applyMigrations(db *sql.DB) error {
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion := 0
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.version, err)
		}

		if _, err = tx.Exec(migration.stmt); err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				return rErr
			}
			return fmt.Errorf("failed to apply migration %d: %w", migration.version, err)
		}

		if _, err = tx.Exec(
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			migration.version, time.Now().Unix(),
		); err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				return rErr
			}
			return fmt.Errorf("failed to record migration %d: %w", migration.version, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.version, err)
		}
	}

	return nil
}

// Package storage defines the persistence contract for the expense ledger.
// The ledger is saved and loaded as a single opaque blob; backends only
// need to hold one document.
package storage

import "fmt"

type Storage interface {
	// Load returns the stored blob. The boolean is false when nothing has
	// been saved yet, which callers treat as an empty ledger.
	Load() ([]byte, bool, error)
	// Save replaces the stored blob with data.
	Save(data []byte) error

	Close() error
}

// PersistenceError wraps a backend failure during Load or Save.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %s", e.Op, e.Err.Error())
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

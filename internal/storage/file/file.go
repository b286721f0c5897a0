// Package file persists the ledger blob as a single JSON document on disk.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"dailyspend/internal/storage"
)

type fileStorage struct {
	path string
}

func New(path string) storage.Storage {
	return &fileStorage{path: path}
}

func (s *fileStorage) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &storage.PersistenceError{Op: "load", Err: err}
	}
	return data, true, nil
}

func (s *fileStorage) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &storage.PersistenceError{Op: "save", Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return &storage.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (s *fileStorage) Close() error {
	return nil
}

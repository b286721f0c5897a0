// Package store owns the canonical expense collection. All mutation goes
// through it, and every mutation rewrites the full collection through the
// persistence backend so memory and disk never drift.
package store

import (
	"fmt"
	"slices"
	"strings"

	"dailyspend/internal/clock"
	"dailyspend/internal/expense"
	"dailyspend/internal/storage"
)

type Store struct {
	storage    storage.Storage
	clock      clock.Clock
	categories []string

	expenses []expense.Expense
	lastID   int64
}

// New loads the persisted collection and returns a store over it. An absent
// blob starts an empty ledger. categories is the closed set Add accepts; an
// empty set disables the check.
func New(s storage.Storage, clk clock.Clock, categories []string) (*Store, error) {
	store := &Store{
		storage:    s,
		clock:      clk,
		categories: categories,
	}

	data, ok, err := s.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		expenses, decodeErr := expense.UnmarshalCollection(data)
		if decodeErr != nil {
			return nil, &storage.PersistenceError{Op: "load", Err: decodeErr}
		}
		store.expenses = expenses
		for _, exp := range expenses {
			if exp.ID > store.lastID {
				store.lastID = exp.ID
			}
		}
	}

	return store, nil
}

// Add validates the input, appends a new record and persists the collection.
// The amount is a decimal string, e.g. "12.50".
func (s *Store) Add(name, amount, category string) (expense.Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return expense.Expense{}, &expense.ValidationError{Field: "name", Reason: "cannot be empty"}
	}

	cents, err := expense.ParseAmount(amount)
	if err != nil {
		return expense.Expense{}, err
	}

	if len(s.categories) > 0 && !slices.Contains(s.categories, category) {
		return expense.Expense{}, &expense.ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category %q", category),
		}
	}

	now := s.clock.Now()
	exp := expense.Expense{
		ID:        s.nextID(now.UnixNano()),
		Name:      name,
		Amount:    cents,
		Category:  category,
		Date:      expense.DayOf(now),
		Timestamp: now,
	}

	s.expenses = append(s.expenses, exp)
	if err = s.persist(); err != nil {
		// Keep memory matching what is on disk.
		s.expenses = s.expenses[:len(s.expenses)-1]
		return expense.Expense{}, err
	}
	s.lastID = exp.ID

	return exp, nil
}

// Delete removes the record with the given id and persists the collection.
// A missing id is not an error.
func (s *Store) Delete(id int64) error {
	idx := slices.IndexFunc(s.expenses, func(exp expense.Expense) bool {
		return exp.ID == id
	})
	if idx == -1 {
		return nil
	}

	removed := s.expenses[idx]
	s.expenses = slices.Delete(s.expenses, idx, idx+1)
	if err := s.persist(); err != nil {
		s.expenses = slices.Insert(s.expenses, idx, removed)
		return err
	}
	return nil
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []expense.Expense {
	return slices.Clone(s.expenses)
}

// nextID derives ids from the creation instant. Two adds inside the same
// clock tick fall back to a monotonic increment so ids stay unique.
func (s *Store) nextID(candidate int64) int64 {
	if candidate <= s.lastID {
		return s.lastID + 1
	}
	return candidate
}

func (s *Store) persist() error {
	data, err := expense.MarshalCollection(s.expenses)
	if err != nil {
		return &storage.PersistenceError{Op: "save", Err: err}
	}
	return s.storage.Save(data)
}

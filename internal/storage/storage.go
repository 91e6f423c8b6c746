// Package storage holds the process-wide movie table.
//
// The table is built once at startup and is immutable afterwards, so storage
// only guards the pointer itself. Readers obtain the current *models.Table and
// query it without further locking. Nothing is persisted across runs.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rewired-gh/cinerank/internal/models"
)

// ErrNotLoaded is returned by Table before a table has been stored.
var ErrNotLoaded = errors.New("movie table not loaded")

// ErrAlreadyLoaded is returned by Put when a table has already been stored.
var ErrAlreadyLoaded = errors.New("movie table already loaded")

// Storage provides thread-safe access to the single movie table
type Storage struct {
	table *models.Table
	mu    sync.RWMutex
}

// New creates an empty Storage instance
func New() *Storage {
	return &Storage{}
}

// Put stores the table. It can be called once; the table is never replaced.
func (s *Storage) Put(table *models.Table) error {
	if table == nil {
		return fmt.Errorf("invalid table: nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table != nil {
		return fmt.Errorf("%w (table %s)", ErrAlreadyLoaded, s.table.ID)
	}
	s.table = table
	return nil
}

// Table returns the stored table
func (s *Storage) Table() (*models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.table == nil {
		return nil, ErrNotLoaded
	}
	return s.table, nil
}

// Loaded reports whether a table has been stored
func (s *Storage) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table != nil
}

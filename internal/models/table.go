package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Table is the ordered, fixed-length collection of movies produced by one
// extraction. Rows keep source page order and are never appended, removed or
// modified after NewTable returns, so a *Table can be shared by concurrent
// readers without locking.
type Table struct {
	ID        string
	Source    string
	FetchedAt time.Time

	movies []Movie
}

// NewTable validates the given rows, derives each row's Decade and returns
// the resulting table. The input slice is copied.
func NewTable(source string, fetchedAt time.Time, movies []Movie) (*Table, error) {
	if source == "" {
		return nil, errors.New("table source must not be empty")
	}

	rows := make([]Movie, len(movies))
	for i, m := range movies {
		m.Decade = DecadeOf(m.Year)
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("invalid movie at row %d: %w", i, err)
		}
		rows[i] = m
	}

	return &Table{
		ID:        uuid.New().String(),
		Source:    source,
		FetchedAt: fetchedAt,
		movies:    rows,
	}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.movies)
}

// At returns the row at index i.
func (t *Table) At(i int) Movie {
	return t.movies[i]
}

// Movies returns a copy of all rows in source order.
func (t *Table) Movies() []Movie {
	if t == nil {
		return []Movie{}
	}
	out := make([]Movie, len(t.movies))
	copy(out, t.movies)
	return out
}

// Meta describes a table without its rows.
type Meta struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	Rows      int       `json:"rows"`
}

// Meta returns the table's descriptive fields.
func (t *Table) Meta() Meta {
	return Meta{
		ID:        t.ID,
		Source:    t.Source,
		FetchedAt: t.FetchedAt,
		Rows:      t.Len(),
	}
}

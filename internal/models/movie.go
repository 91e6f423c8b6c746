// Package models defines the core domain entities for cinerank.
// These models represent ranked movies scraped from the IMDb Top 250 chart, the
// immutable table they are collected into, and the aggregates derived from it.
// All row-level models include built-in validation to ensure data integrity
// throughout the application.
package models

import (
	"errors"
	"fmt"
)

const (
	// MinRating and MaxRating bound the IMDb user rating scale.
	MinRating = 0.0
	MaxRating = 10.0

	minYear = 1000
	maxYear = 9999
)

// Movie represents a single ranked entry of the chart.
// Rank is the 1-based position on the source page, which is also the table order.
type Movie struct {
	Rank     int     `json:"rank"`
	Title    string  `json:"title"`
	Year     int     `json:"release_year"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
	Decade   int     `json:"decade"`
}

// DecadeOf returns the ten-year bucket a release year belongs to.
// It is the only derivation of Movie.Decade.
func DecadeOf(year int) int {
	return 10 * (year / 10)
}

// Validate checks that all movie fields are valid.
func (m *Movie) Validate() error {
	if m.Rank < 1 {
		return errors.New("rank must be at least 1")
	}
	if m.Title == "" {
		return errors.New("title must not be empty")
	}
	if m.Year < minYear || m.Year > maxYear {
		return fmt.Errorf("release year %d is not a four-digit year", m.Year)
	}
	if m.Rating < MinRating || m.Rating > MaxRating {
		return fmt.Errorf("rating %.1f must be between %.1f and %.1f", m.Rating, MinRating, MaxRating)
	}
	if m.Decade != DecadeOf(m.Year) {
		return fmt.Errorf("decade %d does not match release year %d", m.Decade, m.Year)
	}
	return nil
}

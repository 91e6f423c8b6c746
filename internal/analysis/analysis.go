// Package analysis derives the dashboard aggregates from a movie table.
//
// Every function is a pure read of the *models.Table it is given: the table is
// passed explicitly, never mutated, and each call recomputes its result in full.
// Results are deterministic for a given table, including tie-breaks:
//
//	TopN            rating desc, release year asc, source rank asc
//	TopYearsByCount count desc, release year desc
//	DecadeSummary   decade asc
package analysis

import (
	"math"
	"sort"

	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/models"
)

// DecadeSummary groups the table by decade and returns, in ascending decade
// order, the mean rating (rounded to two decimals), the movie count and the
// share of all movies for each decade.
func DecadeSummary(t *models.Table) ([]models.DecadeSummary, error) {
	const op = "decade summary"
	if t.Len() == 0 {
		return nil, &EmptyTableError{Op: op}
	}

	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[int]*acc)
	var decades []int

	for _, m := range t.Movies() {
		g, ok := groups[m.Decade]
		if !ok {
			g = &acc{}
			groups[m.Decade] = g
			decades = append(decades, m.Decade)
		}
		g.sum += m.Rating
		g.count++
	}
	sort.Ints(decades)

	total := float64(t.Len())
	result := make([]models.DecadeSummary, 0, len(decades))
	for _, d := range decades {
		g := groups[d]
		result = append(result, models.DecadeSummary{
			Decade:       d,
			MeanRating:   round2(g.sum / float64(g.count)),
			MovieCount:   g.count,
			MoviePercent: 100 * float64(g.count) / total,
		})
	}

	logger.Debug("DecadeSummary: rows=%d decades=%d", t.Len(), len(result))
	return result, nil
}

// PercentByDecade returns the percentage of movies released in each decade,
// in ascending decade order. The percentages are not rounded and sum to 100.
func PercentByDecade(t *models.Table) ([]models.DecadeShare, error) {
	summary, err := DecadeSummary(t)
	if err != nil {
		return nil, err
	}

	shares := make([]models.DecadeShare, len(summary))
	for i, s := range summary {
		shares[i] = models.DecadeShare{Decade: s.Decade, Percent: s.MoviePercent}
	}
	return shares, nil
}

// TopN returns the n highest-rated movies. Equal ratings are ordered by
// earlier release year first, then by source rank. When n exceeds the table
// length the whole table is returned in that order.
func TopN(t *models.Table, n int) ([]models.Movie, error) {
	if n <= 0 {
		return nil, &InvalidArgumentError{Op: "top n", Argument: "n", Value: n, Reason: "must be positive"}
	}

	movies := t.Movies()
	sort.SliceStable(movies, func(i, j int) bool {
		if movies[i].Rating != movies[j].Rating {
			return movies[i].Rating > movies[j].Rating
		}
		if movies[i].Year != movies[j].Year {
			return movies[i].Year < movies[j].Year
		}
		return movies[i].Rank < movies[j].Rank
	})

	if n > len(movies) {
		n = len(movies)
	}
	return movies[:n], nil
}

// TopYearsByCount counts movies per release year and returns the n years with
// the most movies. Ties are broken by the later year first. When n exceeds the
// number of distinct years, every year is returned.
func TopYearsByCount(t *models.Table, n int) ([]models.YearCount, error) {
	if n <= 0 {
		return nil, &InvalidArgumentError{Op: "top years by count", Argument: "n", Value: n, Reason: "must be positive"}
	}

	counts := make(map[int]int)
	for _, m := range t.Movies() {
		counts[m.Year]++
	}

	years := make([]models.YearCount, 0, len(counts))
	for y, c := range counts {
		years = append(years, models.YearCount{Year: y, Count: c})
	}
	sort.Slice(years, func(i, j int) bool {
		if years[i].Count != years[j].Count {
			return years[i].Count > years[j].Count
		}
		return years[i].Year > years[j].Year
	})

	if n > len(years) {
		n = len(years)
	}
	return years[:n], nil
}

// MeanRating returns the mean rating over the whole table.
func MeanRating(t *models.Table) (float64, error) {
	if t.Len() == 0 {
		return 0, &EmptyTableError{Op: "mean rating"}
	}

	var sum float64
	for _, m := range t.Movies() {
		sum += m.Rating
	}
	return sum / float64(t.Len()), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

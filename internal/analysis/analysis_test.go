package analysis

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewired-gh/cinerank/internal/models"
)

func mustTable(t *testing.T, rows ...models.Movie) *models.Table {
	t.Helper()
	for i := range rows {
		if rows[i].Rank == 0 {
			rows[i].Rank = i + 1
		}
	}
	table, err := models.NewTable("test", time.Now(), rows)
	require.NoError(t, err)
	return table
}

// sampleTable returns a deterministic table covering several decades and
// repeated years.
func sampleTable(t *testing.T) *models.Table {
	t.Helper()
	var rows []models.Movie
	years := []int{1994, 1972, 2008, 1974, 1957, 2003, 1993, 1966, 2001, 1994, 1999, 2010, 1980, 2002, 1975, 1990, 2014, 1954, 1946, 1994}
	for i, y := range years {
		rows = append(rows, models.Movie{
			Title:  fmt.Sprintf("Movie %d", i+1),
			Year:   y,
			Rating: 9.3 - float64(i)*0.05,
		})
	}
	return mustTable(t, rows...)
}

func TestTopN_ScenarioA(t *testing.T) {
	table := mustTable(t,
		models.Movie{Title: "A", Year: 1994, Rating: 9.3},
		models.Movie{Title: "B", Year: 1972, Rating: 9.2},
		models.Movie{Title: "C", Year: 1994, Rating: 9.2},
	)

	top, err := TopN(table, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Title)
	assert.Equal(t, "B", top[1].Title)

	all, err := TopN(table, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(all))
}

func TestTopN_TieBreakIndependentOfSourceOrder(t *testing.T) {
	table := mustTable(t,
		models.Movie{Title: "Newer", Year: 2001, Rating: 8.5},
		models.Movie{Title: "Older", Year: 1960, Rating: 8.5},
		models.Movie{Title: "Best", Year: 2010, Rating: 8.9},
	)

	top, err := TopN(table, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Best", "Older", "Newer"}, titles(top))
}

func TestTopN_Properties(t *testing.T) {
	table := sampleTable(t)

	for _, n := range []int{1, 5, 10, 20, 50} {
		top, err := TopN(table, n)
		require.NoError(t, err)
		require.Len(t, top, min(n, table.Len()))

		for i := 1; i < len(top); i++ {
			prev, cur := top[i-1], top[i]
			require.GreaterOrEqual(t, prev.Rating, cur.Rating, "n=%d row %d not sorted by rating", n, i)
			if prev.Rating == cur.Rating {
				require.LessOrEqual(t, prev.Year, cur.Year, "n=%d row %d tie not broken by year", n, i)
			}
		}
	}
}

func TestTopN_InvalidN(t *testing.T) {
	table := sampleTable(t)

	for _, n := range []int{0, -1, -50} {
		_, err := TopN(table, n)
		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid, "n=%d", n)
		assert.Equal(t, "n", invalid.Argument)
	}
}

func TestTopN_DoesNotMutateTable(t *testing.T) {
	table := sampleTable(t)
	before := table.Movies()

	_, err := TopN(table, 10)
	require.NoError(t, err)
	assert.Equal(t, before, table.Movies())
}

func TestDecadeSummary_ScenarioB(t *testing.T) {
	table := mustTable(t,
		models.Movie{Title: "A", Year: 1994, Rating: 9.3},
		models.Movie{Title: "B", Year: 2003, Rating: 8.9},
		models.Movie{Title: "C", Year: 1999, Rating: 8.6},
	)

	summary, err := DecadeSummary(table)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, 1990, summary[0].Decade)
	assert.Equal(t, 2, summary[0].MovieCount)
	assert.InDelta(t, 8.95, summary[0].MeanRating, 1e-9)

	assert.Equal(t, 2000, summary[1].Decade)
	assert.Equal(t, 1, summary[1].MovieCount)
	assert.InDelta(t, 8.9, summary[1].MeanRating, 1e-9)

	shares, err := PercentByDecade(table)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, 1990, shares[0].Decade)
	assert.InDelta(t, 66.67, shares[0].Percent, 0.01)
	assert.Equal(t, 2000, shares[1].Decade)
	assert.InDelta(t, 33.33, shares[1].Percent, 0.01)
}

func TestDecadeSummary_Properties(t *testing.T) {
	table := sampleTable(t)

	summary, err := DecadeSummary(table)
	require.NoError(t, err)

	total := 0
	for i, s := range summary {
		total += s.MovieCount
		if i > 0 {
			assert.Less(t, summary[i-1].Decade, s.Decade, "decades must be ascending")
		}
		assert.Equal(t, s.MeanRating, math.Round(s.MeanRating*100)/100, "mean rating must be rounded to 2 decimals")
	}
	assert.Equal(t, table.Len(), total)
}

func TestPercentByDecade_SumsToHundred(t *testing.T) {
	tables := []*models.Table{
		sampleTable(t),
		mustTable(t,
			models.Movie{Title: "A", Year: 1921, Rating: 8.0},
			models.Movie{Title: "B", Year: 1934, Rating: 8.1},
			models.Movie{Title: "C", Year: 1957, Rating: 8.2},
			models.Movie{Title: "D", Year: 1968, Rating: 8.3},
			models.Movie{Title: "E", Year: 1977, Rating: 8.4},
			models.Movie{Title: "F", Year: 1988, Rating: 8.5},
			models.Movie{Title: "G", Year: 2019, Rating: 8.6},
		),
	}

	for _, table := range tables {
		shares, err := PercentByDecade(table)
		require.NoError(t, err)

		var sum float64
		for _, s := range shares {
			sum += s.Percent
		}
		assert.InDelta(t, 100.0, sum, 1e-6)
	}
}

func TestEmptyTable(t *testing.T) {
	table := mustTable(t)

	_, err := DecadeSummary(table)
	var empty *EmptyTableError
	require.ErrorAs(t, err, &empty)

	_, err = PercentByDecade(table)
	require.ErrorAs(t, err, &empty)

	_, err = MeanRating(table)
	require.ErrorAs(t, err, &empty)

	_, err = Distribution(table, FieldRating)
	require.ErrorAs(t, err, &empty)

	top, err := TopN(table, 5)
	require.NoError(t, err)
	assert.Empty(t, top)

	years, err := TopYearsByCount(table, 5)
	require.NoError(t, err)
	assert.Empty(t, years)
}

func TestTopYearsByCount(t *testing.T) {
	table := mustTable(t,
		models.Movie{Title: "A", Year: 1994, Rating: 9.3},
		models.Movie{Title: "B", Year: 1994, Rating: 9.0},
		models.Movie{Title: "C", Year: 1994, Rating: 8.9},
		models.Movie{Title: "D", Year: 2001, Rating: 8.8},
		models.Movie{Title: "E", Year: 2001, Rating: 8.7},
		models.Movie{Title: "F", Year: 1957, Rating: 8.6},
		models.Movie{Title: "G", Year: 1957, Rating: 8.5},
		models.Movie{Title: "H", Year: 1972, Rating: 8.4},
	)

	years, err := TopYearsByCount(table, 3)
	require.NoError(t, err)
	assert.Equal(t, []models.YearCount{
		{Year: 1994, Count: 3},
		{Year: 2001, Count: 2},
		{Year: 1957, Count: 2},
	}, years)

	all, err := TopYearsByCount(table, 15)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, models.YearCount{Year: 1972, Count: 1}, all[3])

	_, err = TopYearsByCount(table, 0)
	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
}

func TestMeanRating(t *testing.T) {
	table := mustTable(t,
		models.Movie{Title: "A", Year: 1994, Rating: 9.0},
		models.Movie{Title: "B", Year: 2003, Rating: 8.0},
	)

	mean, err := MeanRating(table)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, mean, 1e-9)
}

func TestErrorMessages(t *testing.T) {
	err := error(&EmptyTableError{Op: "decade summary"})
	assert.Equal(t, "decade summary: table has no rows", err.Error())

	err = fmt.Errorf("wrapped: %w", &InvalidArgumentError{Op: "top n", Argument: "n", Value: 0, Reason: "must be positive"})
	var invalid *InvalidArgumentError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "invalid n 0")
}

func titles(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

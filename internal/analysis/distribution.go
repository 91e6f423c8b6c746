package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/rewired-gh/cinerank/internal/models"
)

// Field names a numeric column that can be histogrammed.
type Field string

const (
	FieldRating      Field = "rating"
	FieldReleaseYear Field = "release_year"
)

// DistributionBins is the fixed number of equal-width histogram bins.
const DistributionBins = 20

// Fields lists the accepted distribution columns in display order.
func Fields() []Field {
	return []Field{FieldRating, FieldReleaseYear}
}

// Label returns the human readable column name.
func (f Field) Label() string {
	switch f {
	case FieldRating:
		return "Rating"
	case FieldReleaseYear:
		return "Release year"
	}
	return string(f)
}

// ParseField maps a column name to a Field. Matching is case-insensitive and
// accepts "release_years" as an alias of release_year.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rating":
		return FieldRating, nil
	case "release_year", "release_years", "year":
		return FieldReleaseYear, nil
	}
	return "", &InvalidArgumentError{Op: "distribution", Argument: "field", Value: name, Reason: "must be rating or release_year"}
}

func (f Field) value(m models.Movie) (float64, bool) {
	switch f {
	case FieldRating:
		return m.Rating, true
	case FieldReleaseYear:
		return float64(m.Year), true
	}
	return 0, false
}

// Distribution buckets one column of the whole table into DistributionBins
// equal-width bins spanning [min, max]. The last bin is closed so the maximum
// is counted. When every value is equal, all of them land in the first bin.
func Distribution(t *models.Table, field Field) (*models.Distribution, error) {
	const op = "distribution"
	if _, ok := field.value(models.Movie{}); !ok {
		return nil, &InvalidArgumentError{Op: op, Argument: "field", Value: string(field), Reason: "must be rating or release_year"}
	}
	if t.Len() == 0 {
		return nil, &EmptyTableError{Op: op}
	}

	values := make([]float64, 0, t.Len())
	for _, m := range t.Movies() {
		v, _ := field.value(m)
		values = append(values, v)
	}
	sort.Float64s(values)

	lo, hi := values[0], values[len(values)-1]
	width := (hi - lo) / DistributionBins

	bins := make([]models.Bin, DistributionBins)
	for i := range bins {
		bins[i].Lower = lo + float64(i)*width
		bins[i].Upper = lo + float64(i+1)*width
	}
	bins[DistributionBins-1].Upper = hi

	for _, v := range values {
		idx := 0
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= DistributionBins {
				idx = DistributionBins - 1
			}
		}
		bins[idx].Count++
	}

	return &models.Distribution{
		Field: string(field),
		Min:   lo,
		Max:   hi,
		Width: width,
		Bins:  bins,
		Summary: models.FiveNumber{
			Min:    lo,
			Q1:     quantile(values, 0.25),
			Median: quantile(values, 0.5),
			Q3:     quantile(values, 0.75),
			Max:    hi,
		},
	}, nil
}

// quantile uses linear interpolation between closest ranks on sorted input.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lower := math.Floor(pos)
	upper := math.Ceil(pos)
	if lower == upper {
		return sorted[int(pos)]
	}
	frac := pos - lower
	return sorted[int(lower)]*(1-frac) + sorted[int(upper)]*frac
}

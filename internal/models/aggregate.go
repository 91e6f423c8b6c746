package models

// DecadeSummary is one row of the per-decade breakdown.
type DecadeSummary struct {
	Decade       int     `json:"decade"`
	MeanRating   float64 `json:"mean_rating"`
	MovieCount   int     `json:"movie_count"`
	MoviePercent float64 `json:"movie_percent"`
}

// DecadeShare is the percentage of all movies released in a decade.
type DecadeShare struct {
	Decade  int     `json:"decade"`
	Percent float64 `json:"percent"`
}

// YearCount is the number of movies released in a single year.
type YearCount struct {
	Year  int `json:"release_year"`
	Count int `json:"movie_count"`
}

// Bin is one histogram bucket. Every bin is half-open [Lower, Upper) except
// the last one, which also includes Upper.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// FiveNumber is the box plot summary of a numeric column.
type FiveNumber struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Distribution is a histogram of one column together with its box plot summary.
type Distribution struct {
	Field   string     `json:"field"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Width   float64    `json:"width"`
	Bins    []Bin      `json:"bins"`
	Summary FiveNumber `json:"summary"`
}

// Total returns the number of values counted across all bins.
func (d *Distribution) Total() int {
	total := 0
	for _, b := range d.Bins {
		total += b.Count
	}
	return total
}

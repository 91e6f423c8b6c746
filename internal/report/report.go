// Package report prints the dashboard aggregates as terminal tables.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rewired-gh/cinerank/internal/analysis"
	"github.com/rewired-gh/cinerank/internal/models"
)

// Options selects how many rows the ranked sections show.
type Options struct {
	TopN  int
	Years int
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.SetTitle(title)
	return t
}

// Write renders every section for t into w. Aggregate errors abort the report.
func Write(w io.Writer, t *models.Table, opts Options) error {
	meta := t.Meta()
	fmt.Fprintf(w, "%d movies from %s (fetched %s, table %s)\n\n",
		meta.Rows, meta.Source, meta.FetchedAt.Format("2006-01-02 15:04 MST"), meta.ID)

	sections := []func(io.Writer, *models.Table, Options) error{
		topMovies,
		decadeSummary,
		decadeShare,
		topYears,
	}
	for _, section := range sections {
		if err := section(w, t, opts); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func topMovies(w io.Writer, t *models.Table, opts Options) error {
	movies, err := analysis.TopN(t, opts.TopN)
	if err != nil {
		return err
	}

	tw := newTable(w, fmt.Sprintf("Top %d movies by IMDB rating", opts.TopN))
	tw.AppendHeader(table.Row{"#", "Title", "Year", "Director", "Rating"})
	for _, m := range movies {
		tw.AppendRow(table.Row{m.Rank, m.Title, m.Year, m.Director, fmt.Sprintf("%.1f", m.Rating)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 5, Align: text.AlignRight}})
	tw.Render()
	return nil
}

func decadeSummary(w io.Writer, t *models.Table, _ Options) error {
	summary, err := analysis.DecadeSummary(t)
	if err != nil {
		return err
	}
	mean, err := analysis.MeanRating(t)
	if err != nil {
		return err
	}

	tw := newTable(w, "Average rating and number of movies by decade")
	tw.AppendHeader(table.Row{"Decade", "Average rating", "Movies", "Share"})
	for _, s := range summary {
		tw.AppendRow(table.Row{s.Decade, fmt.Sprintf("%.2f", s.MeanRating), s.MovieCount, fmt.Sprintf("%.2f%%", s.MoviePercent)})
	}
	tw.AppendFooter(table.Row{"Total", fmt.Sprintf("%.2f", mean), t.Len(), "100.00%"})
	tw.Render()
	return nil
}

func decadeShare(w io.Writer, t *models.Table, _ Options) error {
	shares, err := analysis.PercentByDecade(t)
	if err != nil {
		return err
	}

	tw := newTable(w, "Percentage distribution of movies by decade")
	tw.AppendHeader(table.Row{"Decade", "Percent"})
	for _, s := range shares {
		tw.AppendRow(table.Row{s.Decade, fmt.Sprintf("%.2f%%", s.Percent)})
	}
	tw.Render()
	return nil
}

func topYears(w io.Writer, t *models.Table, opts Options) error {
	years, err := analysis.TopYearsByCount(t, opts.Years)
	if err != nil {
		return err
	}

	tw := newTable(w, fmt.Sprintf("Top %d years by movies quantity", opts.Years))
	tw.AppendHeader(table.Row{"Year", "Movies"})
	for _, y := range years {
		tw.AppendRow(table.Row{y.Year, y.Count})
	}
	tw.Render()
	return nil
}

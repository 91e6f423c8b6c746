// Package charts renders dashboard aggregates as interactive go-echarts pages.
// Each builder maps one aggregate to one visual and returns something that can
// render a standalone HTML document.
package charts

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rewired-gh/cinerank/internal/models"
)

// Renderer writes a complete HTML document for a chart.
type Renderer interface {
	Render(w io.Writer) error
}

const (
	wideWidth   = "1000px"
	narrowWidth = "800px"
	tallHeight  = "800px"
	shortHeight = "600px"
)

func initOpts(title, width, height string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		Width:     width,
		Height:    height,
	})
}

// TopMovies draws a horizontal bar per movie, highest rating on top.
func TopMovies(movies []models.Movie, n int) *charts.Bar {
	title := fmt.Sprintf("Top %d movies by IMDB rating", n)

	// Category axes are drawn bottom-up once reversed, so feed them lowest first.
	labels := make([]string, 0, len(movies))
	data := make([]opts.BarData, 0, len(movies))
	for i := len(movies) - 1; i >= 0; i-- {
		m := movies[i]
		labels = append(labels, m.Title)
		data = append(data, opts.BarData{
			Name:  fmt.Sprintf("%s (%d)", m.Title, m.Year),
			Value: m.Rating,
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(title, narrowWidth, shortHeight),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Rating of movie"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Name of movie"}),
	)
	bar.SetXAxis(labels).
		AddSeries("Rating", data,
			charts.WithLabelOpts(opts.Label{Position: "right", Formatter: "{c}"}),
		)
	bar.XYReversal()
	return bar
}

// Distribution draws the histogram of a column above its box plot.
func Distribution(dist *models.Distribution, label string) *components.Page {
	title := label + " distribution"

	binLabels := make([]string, len(dist.Bins))
	counts := make([]opts.BarData, len(dist.Bins))
	for i, b := range dist.Bins {
		binLabels[i] = formatBin(b)
		counts[i] = opts.BarData{Value: b.Count}
	}

	hist := charts.NewBar()
	hist.SetGlobalOptions(
		initOpts(title, wideWidth, shortHeight),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: label}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	hist.SetXAxis(binLabels).
		AddSeries("count", counts,
			charts.WithLabelOpts(opts.Label{Position: "top", Formatter: "{c}"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "indianred"}),
		)

	s := dist.Summary
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		initOpts(title, wideWidth, "200px"),
		charts.WithTitleOpts(opts.Title{Subtitle: "min / q1 / median / q3 / max"}),
	)
	box.SetXAxis([]string{label}).
		AddSeries(label, []opts.BoxPlotData{{Value: []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max}}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "indianred"}),
		)
	box.XYReversal()

	page := components.NewPage()
	page.AddCharts(hist, box)
	return page
}

// DecadeShare draws a donut of the share of movies per decade.
func DecadeShare(shares []models.DecadeShare) *charts.Pie {
	const title = "Percentage distribution of movies by decade"

	data := make([]opts.PieData, len(shares))
	for i, s := range shares {
		data[i] = opts.PieData{Name: strconv.Itoa(s.Decade), Value: round2(s.Percent)}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		initOpts(title, wideWidth, tallHeight),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)
	pie.AddSeries("Movie percent", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"10%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Position: "inside", Formatter: "{b}: {d}%"}),
	)
	return pie
}

// TopYears draws a ring of movie counts for the busiest release years.
func TopYears(years []models.YearCount, n int) *charts.Pie {
	title := fmt.Sprintf("Top %d years by movies quantity", n)

	data := make([]opts.PieData, len(years))
	for i, y := range years {
		data[i] = opts.PieData{Name: strconv.Itoa(y.Year), Value: y.Count}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		initOpts(title, wideWidth, tallHeight),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "IMDB Rating: years with movie hits",
		}),
	)
	pie.AddSeries("Movie count", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"60%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Formatter: "{b}: {d}%"}),
	)
	return pie
}

// DecadeSummary draws mean rating and movie count per decade as grouped bars
// with the overall mean rating as a reference line.
func DecadeSummary(summary []models.DecadeSummary, overallMean float64) *charts.Bar {
	const title = "Average rating and number of movies by decade"

	decades := make([]string, len(summary))
	means := make([]opts.BarData, len(summary))
	counts := make([]opts.BarData, len(summary))
	overall := make([]opts.LineData, len(summary))
	for i, s := range summary {
		decades[i] = strconv.Itoa(s.Decade)
		means[i] = opts.BarData{Value: s.MeanRating}
		counts[i] = opts.BarData{Value: s.MovieCount}
		overall[i] = opts.LineData{Value: round2(overallMean)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(title, wideWidth, shortHeight),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Decade", AxisLabel: &opts.AxisLabel{Rotate: 60}}),
	)
	bar.SetXAxis(decades).
		AddSeries("Average rating", means,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}),
			charts.WithLabelOpts(opts.Label{Position: "top", Formatter: "{c}"}),
		).
		AddSeries("Count of movies", counts,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "blue"}),
			charts.WithLabelOpts(opts.Label{Position: "top", Formatter: "{c}"}),
		)

	line := charts.NewLine()
	line.SetXAxis(decades).
		AddSeries(fmt.Sprintf("Total average rating line = %.2f", overallMean), overall,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"}),
		)
	bar.Overlap(line)
	return bar
}

var noDataTemplate = template.Must(template.New("nodata").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family: sans-serif; display: flex; align-items: center; justify-content: center; height: 90vh;">
<div style="text-align: center; color: #666;">
<h3>{{.Title}}</h3>
<p>No data available</p>
{{if .Reason}}<p><small>{{.Reason}}</small></p>{{end}}
</div>
</body>
</html>
`))

// NoData renders the placeholder shown when a chart cannot be built.
func NoData(w io.Writer, title, reason string) error {
	return noDataTemplate.Execute(w, struct {
		Title  string
		Reason string
	}{title, reason})
}

func formatBin(b models.Bin) string {
	return strconv.FormatFloat(round2(b.Lower), 'f', -1, 64) + "–" + strconv.FormatFloat(round2(b.Upper), 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

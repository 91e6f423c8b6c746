package imdb

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rewired-gh/cinerank/internal/models"
)

// Chart markup selectors. Each ranked entry is one table row holding a title
// cell and a rating cell.
const (
	titleCellSelector   = "td.titleColumn"
	ratingSelector      = "td.imdbRating strong"
	rowSelector         = "tr"
	yearSelector        = "span"
	creditsLinkSelector = "a"
)

var (
	rankPrefix      = regexp.MustCompile(`^\s*\d+\.\s*`)
	yearSuffix      = regexp.MustCompile(`\s*\(\d+\)\s*$`)
	fourDigitYear   = regexp.MustCompile(`^\d{4}$`)
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// Parse reads a chart page and builds the movie table. source is recorded on
// the table as its origin.
//
// Ratings are read from the same row as their title cell. The page-wide count
// of title cells and rating cells must also agree, so markup drift surfaces as
// a ParseError instead of misaligned rows.
func Parse(ctx context.Context, r io.Reader, source string) (*models.Table, error) {
	_, span := tracer.Start(ctx, "Parse")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read document")
		return nil, &ParseError{Reason: "failed to read document", Err: err}
	}

	titleCells := doc.Find(titleCellSelector)
	ratingCells := doc.Find(ratingSelector)
	span.SetAttributes(
		attribute.Int("title_cells", titleCells.Length()),
		attribute.Int("rating_cells", ratingCells.Length()),
	)

	if titleCells.Length() == 0 {
		span.SetStatus(codes.Error, "no chart entries")
		return nil, &ParseError{Reason: "no chart entries found"}
	}
	if titleCells.Length() != ratingCells.Length() {
		span.SetStatus(codes.Error, "selector count mismatch")
		return nil, &ParseError{Reason: fmt.Sprintf("found %d title cells but %d ratings", titleCells.Length(), ratingCells.Length())}
	}

	movies := make([]models.Movie, 0, titleCells.Length())
	var parseErr error
	titleCells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		movie, err := parseRow(i+1, cell)
		if err != nil {
			parseErr = err
			return false
		}
		movies = append(movies, movie)
		return true
	})
	if parseErr != nil {
		span.RecordError(parseErr)
		span.SetStatus(codes.Error, "malformed entry")
		return nil, parseErr
	}

	table, err := models.NewTable(source, time.Now(), movies)
	if err != nil {
		return nil, &ParseError{Reason: "invalid chart data", Err: err}
	}
	return table, nil
}

func parseRow(rank int, cell *goquery.Selection) (models.Movie, error) {
	title := CleanTitle(cell.Text())
	if title == "" {
		return models.Movie{}, &ParseError{Row: rank, Reason: "empty title"}
	}

	yearText := strings.Trim(strings.TrimSpace(cell.Find(yearSelector).First().Text()), "()")
	if !fourDigitYear.MatchString(yearText) {
		return models.Movie{}, &ParseError{Row: rank, Reason: "missing or malformed release year " + strconv.Quote(yearText)}
	}
	year, _ := strconv.Atoi(yearText)

	credits, ok := cell.Find(creditsLinkSelector).First().Attr("title")
	if !ok {
		return models.Movie{}, &ParseError{Row: rank, Reason: "missing credits on title link"}
	}

	ratingText := strings.TrimSpace(cell.Closest(rowSelector).Find(ratingSelector).First().Text())
	if ratingText == "" {
		return models.Movie{}, &ParseError{Row: rank, Reason: "missing rating"}
	}
	rating, err := strconv.ParseFloat(ratingText, 64)
	if err != nil {
		return models.Movie{}, &ParseError{Row: rank, Reason: "malformed rating " + strconv.Quote(ratingText), Err: err}
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return models.Movie{}, &ParseError{Row: rank, Reason: "rating " + ratingText + " out of range"}
	}

	return models.Movie{
		Rank:     rank,
		Title:    title,
		Year:     year,
		Director: Director(credits),
		Rating:   rating,
	}, nil
}

// CleanTitle strips the leading "<rank>." prefix and then the trailing
// "(year)" annotation from a title cell's text, collapsing inner whitespace.
func CleanTitle(raw string) string {
	s := rankPrefix.ReplaceAllString(raw, "")
	s = yearSuffix.ReplaceAllString(s, "")
	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Director returns the first credited name from a credits string such as
// "Frank Darabont (dir.), Tim Robbins, Morgan Freeman".
func Director(credits string) string {
	name, _, _ := strings.Cut(credits, "(")
	return strings.TrimSpace(name)
}

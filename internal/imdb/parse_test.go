package imdb

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/top.html")
	require.NoError(t, err)
	return string(b)
}

func TestParse_Fixture(t *testing.T) {
	table, err := Parse(context.Background(), strings.NewReader(readFixture(t)), "fixture")
	require.NoError(t, err)
	require.Equal(t, 5, table.Len())
	assert.Equal(t, "fixture", table.Source)

	movies := table.Movies()
	first := movies[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "The Shawshank Redemption", first.Title)
	assert.Equal(t, 1994, first.Year)
	assert.Equal(t, 1990, first.Decade)
	assert.Equal(t, "Frank Darabont", first.Director)
	assert.Equal(t, 9.2, first.Rating)

	assert.Equal(t, "Francis Ford Coppola", movies[1].Director)
	assert.Equal(t, "1917", movies[3].Title)
	assert.Equal(t, 2019, movies[3].Year)
	assert.Equal(t, "2001: A Space Odyssey", movies[4].Title)
	assert.Equal(t, 1960, movies[4].Decade)

	for i, m := range movies {
		assert.Equal(t, i+1, m.Rank, "source order must be preserved")
	}
}

func row(rank, title, credits, year, rating string) string {
	var b strings.Builder
	b.WriteString("<tr><td class=\"titleColumn\">\n  " + rank + ".\n  ")
	if credits != "" {
		b.WriteString(`<a href="/title/x/" title="` + credits + `">` + title + `</a>`)
	} else {
		b.WriteString(`<a href="/title/x/">` + title + `</a>`)
	}
	if year != "" {
		b.WriteString("\n  <span class=\"secondaryInfo\">" + year + "</span>")
	}
	b.WriteString("\n</td>")
	if rating != "-" {
		b.WriteString(`<td class="ratingColumn imdbRating"><strong>` + rating + `</strong></td>`)
	}
	b.WriteString("</tr>\n")
	return b.String()
}

func page(rows ...string) string {
	return "<html><body><table><tbody>\n" + strings.Join(rows, "") + "</tbody></table></body></html>"
}

func TestParse_Malformed(t *testing.T) {
	good := row("1", "A", "Dir A (dir.), Star", "(1994)", "9.3")

	tests := []struct {
		name string
		html string
	}{
		{
			name: "no entries",
			html: "<html><body><p>nothing here</p></body></html>",
		},
		{
			name: "fewer ratings than titles",
			html: page(good, row("2", "B", "Dir B (dir.)", "(1972)", "-")),
		},
		{
			name: "extra rating outside any row",
			html: page(good, row("2", "B", "Dir B (dir.)", "(1972)", "9.2")) +
				`<table><tr><td class="imdbRating"><strong>8.0</strong></td></tr></table>`,
		},
		{
			name: "rating belongs to another row",
			html: page(
				good,
				row("2", "B", "Dir B (dir.)", "(1972)", "-"),
				`<tr><td class="imdbRating"><strong>9.2</strong></td></tr>`,
			),
		},
		{
			name: "missing year",
			html: page(row("1", "A", "Dir A (dir.)", "", "9.3")),
		},
		{
			name: "two digit year",
			html: page(row("1", "A", "Dir A (dir.)", "(94)", "9.3")),
		},
		{
			name: "missing credits",
			html: page(row("1", "A", "", "(1994)", "9.3")),
		},
		{
			name: "non-numeric rating",
			html: page(row("1", "A", "Dir A (dir.)", "(1994)", "n/a")),
		},
		{
			name: "rating out of range",
			html: page(row("1", "A", "Dir A (dir.)", "(1994)", "11.0")),
		},
		{
			name: "empty title",
			html: page(row("1", "", "Dir A (dir.)", "(1994)", "9.3")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(context.Background(), strings.NewReader(tt.html), "test")
			assert.Nil(t, table)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParse_RowNumberInError(t *testing.T) {
	html := page(
		row("1", "A", "Dir A (dir.)", "(1994)", "9.3"),
		row("2", "B", "Dir B (dir.)", "(1972)", "9.2"),
		row("3", "C", "Dir C (dir.)", "(19x4)", "9.0"),
	)

	_, err := Parse(context.Background(), strings.NewReader(html), "test")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Row)
	assert.Contains(t, err.Error(), "row 3")
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"\n      1.\n      The Shawshank Redemption\n        (1994)\n", "The Shawshank Redemption"},
		{"250.  Jai Bhim (2021)", "Jai Bhim"},
		{"  12.\n  1917\n  (2019)  ", "1917"},
		{"Se7en", "Se7en"},
		{"7. The Seventh  Seal\n(1957)", "The Seventh Seal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanTitle(tt.raw), "CleanTitle(%q)", tt.raw)
	}
}

func TestDirector(t *testing.T) {
	tests := []struct {
		credits string
		want    string
	}{
		{"Frank Darabont (dir.), Tim Robbins, Morgan Freeman", "Frank Darabont"},
		{"  Akira Kurosawa (dir.)", "Akira Kurosawa"},
		{"Sergio Leone", "Sergio Leone"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Director(tt.credits), "Director(%q)", tt.credits)
	}
}

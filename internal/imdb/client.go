// Package imdb extracts the Top 250 chart into a movie table.
//
// Extraction is one blocking GET of the chart page followed by a single pass
// over its markup. There are no retries: a failed fetch is reported as a
// FetchError and malformed markup as a ParseError, and neither yields a
// partial table.
package imdb

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/models"
)

var tracer = otel.Tracer("cinerank.internal.imdb")

// DefaultURL is the public Top 250 chart.
const DefaultURL = "https://www.imdb.com/chart/top/"

// ClientConfig holds optional request settings.
type ClientConfig struct {
	Timeout        time.Duration
	UserAgent      string
	AcceptLanguage string
}

// Client fetches and parses the chart page.
type Client struct {
	url  string
	rest *resty.Client
}

// NewClient creates a new chart client for the given page URL.
func NewClient(url string, cfg ClientConfig) *Client {
	if url == "" {
		url = DefaultURL
	}

	rest := resty.New()
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		rest.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.AcceptLanguage != "" {
		rest.SetHeader("Accept-Language", cfg.AcceptLanguage)
	}
	rest.SetHeader("Accept", "text/html")

	return &Client{url: url, rest: rest}
}

// URL returns the chart page address.
func (c *Client) URL() string {
	return c.url
}

// Fetch retrieves the raw chart page.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", c.url))

	res, err := c.rest.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, &FetchError{URL: c.url, Err: err}
	}

	span.SetAttributes(attribute.Int("status", res.StatusCode()))
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "unexpected status")
		return nil, &FetchError{URL: c.url, StatusCode: res.StatusCode()}
	}

	logger.Debug("Fetched %s: status=%d bytes=%d in %v", c.url, res.StatusCode(), len(res.Body()), res.Time())
	return res.Body(), nil
}

// Extract fetches the chart page and parses it into a table.
func (c *Client) Extract(ctx context.Context) (*models.Table, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	body, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	table, err := Parse(ctx, bytes.NewReader(body), c.url)
	if err != nil {
		return nil, err
	}

	logger.Info("Extracted %d movies from %s (table %s)", table.Len(), c.url, table.ID)
	return table, nil
}

// ExtractFile parses a chart page saved to disk.
func ExtractFile(ctx context.Context, path string) (*models.Table, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{URL: path, Err: err}
	}

	table, err := Parse(ctx, bytes.NewReader(body), path)
	if err != nil {
		return nil, err
	}

	logger.Info("Extracted %d movies from %s (table %s)", table.Len(), path, table.ID)
	return table, nil
}

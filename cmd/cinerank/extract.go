package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/rewired-gh/cinerank/internal/config"
	"github.com/rewired-gh/cinerank/internal/imdb"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/models"
)

// loadTable runs the one-shot extraction. A configured file wins over the URL.
func loadTable(ctx context.Context, src config.SourceConfig) (*models.Table, error) {
	var (
		table  *models.Table
		err    error
		origin string
	)

	if src.File != "" {
		origin = src.File
		logger.Info("Reading chart from %s", origin)
		table, err = imdb.ExtractFile(ctx, src.File)
	} else {
		client := imdb.NewClient(src.URL, imdb.ClientConfig{
			Timeout:        src.Timeout,
			UserAgent:      src.UserAgent,
			AcceptLanguage: src.AcceptLanguage,
		})
		origin = client.URL()
		logger.Info("Fetching chart from %s", origin)
		table, err = client.Extract(ctx)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "extract chart from %s", origin)
	}
	return table, nil
}

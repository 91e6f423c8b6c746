package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/rewired-gh/cinerank/internal/dashboard"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Extract the chart once and serve the dashboard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		table, err := loadTable(ctx, cfg.Source)
		if err != nil {
			return err
		}

		store := storage.New()
		if err := store.Put(table); err != nil {
			return eris.Wrap(err, "store table")
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.Dashboard.ListenAddr
		}

		srv := &http.Server{
			Addr:         addr,
			Handler:      dashboard.New(store, cfg.Dashboard).Router(),
			ReadTimeout:  cfg.Dashboard.ReadTimeout,
			WriteTimeout: cfg.Dashboard.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Dashboard listening on %s", addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return eris.Wrap(err, "server listen")
		case <-ctx.Done():
		}

		logger.Info("Shutdown signal received, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "server shutdown")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// Package dashboard serves the movie dashboard: an HTML page with one embedded
// chart per section, the chart documents themselves and a read-only JSON API
// over the same aggregates.
package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rewired-gh/cinerank/internal/config"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/storage"
)

// Server holds the dependencies shared by every handler.
type Server struct {
	store *storage.Storage
	cfg   config.DashboardConfig
}

// New creates a dashboard server reading from store.
func New(store *storage.Storage, cfg config.DashboardConfig) *Server {
	return &Server{store: store, cfg: cfg}
}

// Router returns the HTTP handler for the whole dashboard.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/", s.indexPage())
	r.Get("/healthz", s.healthz())

	r.Route("/charts", func(r chi.Router) {
		r.Get("/top", s.chart("Top movies", s.topChart))
		r.Get("/distribution", s.chart("Distribution", s.distributionChart))
		r.Get("/decades/share", s.chart("Percentage by decade", s.decadeShareChart))
		r.Get("/years", s.chart("Top years", s.topYearsChart))
		r.Get("/decades", s.chart("Decade summary", s.decadeSummaryChart))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/meta", s.api(s.metaAPI))
		r.Get("/movies", s.api(s.moviesAPI))
		r.Get("/top", s.api(s.topAPI))
		r.Get("/distribution", s.api(s.distributionAPI))
		r.Get("/decades", s.api(s.decadeSummaryAPI))
		r.Get("/decades/share", s.api(s.decadeShareAPI))
		r.Get("/years", s.api(s.topYearsAPI))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return r
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Info("%s %s -> %d (%d bytes, %s) request_id=%s",
			r.Method, r.URL.RequestURI(), ww.Status(), ww.BytesWritten(),
			time.Since(start), middleware.GetReqID(r.Context()))
	})
}

func (s *Server) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"loaded": s.store.Loaded(),
		})
	}
}

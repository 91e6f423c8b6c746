package dashboard

import (
	"net/http"

	"github.com/rewired-gh/cinerank/internal/analysis"
	"github.com/rewired-gh/cinerank/internal/charts"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/models"
)

type chartBuilder func(r *http.Request, t *models.Table) (charts.Renderer, error)

// chart wraps a builder so that any failure renders a visible placeholder
// instead of breaking the surrounding page.
func (s *Server) chart(title string, build chartBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		t, err := s.store.Table()
		var out charts.Renderer
		if err == nil {
			out, err = build(r, t)
		}
		if err != nil {
			logger.Warn("Chart %q unavailable: %v", title, err)
			w.WriteHeader(statusFor(err))
			if err := charts.NoData(w, title, err.Error()); err != nil {
				logger.Error("Failed to render placeholder: %v", err)
			}
			return
		}

		if err := out.Render(w); err != nil {
			logger.Error("Failed to render chart %q: %v", title, err)
		}
	}
}

func (s *Server) topChart(r *http.Request, t *models.Table) (charts.Renderer, error) {
	n, err := intParam(r, "n", s.cfg.TopNDefault)
	if err != nil {
		return nil, err
	}
	movies, err := analysis.TopN(t, n)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, &analysis.EmptyTableError{Op: "top movies"}
	}
	return charts.TopMovies(movies, n), nil
}

func (s *Server) distributionChart(r *http.Request, t *models.Table) (charts.Renderer, error) {
	field, err := fieldParam(r, s.cfg.DistributionDefault)
	if err != nil {
		return nil, err
	}
	dist, err := analysis.Distribution(t, field)
	if err != nil {
		return nil, err
	}
	return charts.Distribution(dist, field.Label()), nil
}

func (s *Server) decadeShareChart(_ *http.Request, t *models.Table) (charts.Renderer, error) {
	shares, err := analysis.PercentByDecade(t)
	if err != nil {
		return nil, err
	}
	return charts.DecadeShare(shares), nil
}

func (s *Server) topYearsChart(r *http.Request, t *models.Table) (charts.Renderer, error) {
	n, err := intParam(r, "n", s.cfg.YearDefault)
	if err != nil {
		return nil, err
	}
	years, err := analysis.TopYearsByCount(t, n)
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, &analysis.EmptyTableError{Op: "top years"}
	}
	return charts.TopYears(years, n), nil
}

func (s *Server) decadeSummaryChart(_ *http.Request, t *models.Table) (charts.Renderer, error) {
	summary, err := analysis.DecadeSummary(t)
	if err != nil {
		return nil, err
	}
	mean, err := analysis.MeanRating(t)
	if err != nil {
		return nil, err
	}
	return charts.DecadeSummary(summary, mean), nil
}

package dashboard

import (
	"net/http"

	"github.com/rewired-gh/cinerank/internal/analysis"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/models"
)

type apiHandler func(r *http.Request, t *models.Table) (any, error)

func (s *Server) api(h apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.store.Table()
		var body any
		if err == nil {
			body, err = h(r, t)
		}
		if err != nil {
			code := statusFor(err)
			if code == http.StatusInternalServerError {
				logger.Error("API %s failed: %v", r.URL.Path, err)
			}
			writeError(w, code, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func (s *Server) metaAPI(_ *http.Request, t *models.Table) (any, error) {
	return t.Meta(), nil
}

func (s *Server) moviesAPI(_ *http.Request, t *models.Table) (any, error) {
	return t.Movies(), nil
}

func (s *Server) topAPI(r *http.Request, t *models.Table) (any, error) {
	n, err := intParam(r, "n", s.cfg.TopNDefault)
	if err != nil {
		return nil, err
	}
	return analysis.TopN(t, n)
}

func (s *Server) distributionAPI(r *http.Request, t *models.Table) (any, error) {
	field, err := fieldParam(r, s.cfg.DistributionDefault)
	if err != nil {
		return nil, err
	}
	return analysis.Distribution(t, field)
}

type decadeSummaryResponse struct {
	OverallMeanRating float64                `json:"overall_mean_rating"`
	Decades           []models.DecadeSummary `json:"decades"`
}

func (s *Server) decadeSummaryAPI(_ *http.Request, t *models.Table) (any, error) {
	summary, err := analysis.DecadeSummary(t)
	if err != nil {
		return nil, err
	}
	mean, err := analysis.MeanRating(t)
	if err != nil {
		return nil, err
	}
	return decadeSummaryResponse{OverallMeanRating: mean, Decades: summary}, nil
}

func (s *Server) decadeShareAPI(_ *http.Request, t *models.Table) (any, error) {
	return analysis.PercentByDecade(t)
}

func (s *Server) topYearsAPI(r *http.Request, t *models.Table) (any, error) {
	n, err := intParam(r, "n", s.cfg.YearDefault)
	if err != nil {
		return nil, err
	}
	return analysis.TopYearsByCount(t, n)
}

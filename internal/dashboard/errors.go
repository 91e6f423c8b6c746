package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rewired-gh/cinerank/internal/analysis"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/storage"
)

// statusFor maps an aggregate or storage error onto an HTTP status code.
func statusFor(err error) int {
	var invalid *analysis.InvalidArgumentError
	var empty *analysis.EmptyTableError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &empty), errors.Is(err, storage.ErrNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorBody{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

// intParam reads an integer query parameter, falling back to def
// when it is absent. Range checks are left to the aggregators.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &analysis.InvalidArgumentError{
			Op:       "parse query",
			Argument: name,
			Value:    raw,
			Reason:   "not an integer",
		}
	}
	return v, nil
}

func fieldParam(r *http.Request, def string) (analysis.Field, error) {
	raw := r.URL.Query().Get("field")
	if raw == "" {
		raw = def
	}
	return analysis.ParseField(raw)
}

package dashboard

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rewired-gh/cinerank/internal/analysis"
	"github.com/rewired-gh/cinerank/internal/logger"
	"github.com/rewired-gh/cinerank/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type option struct {
	Value    string
	Label    string
	Selected bool
}

type intOption struct {
	Value    int
	Selected bool
}

type pageData struct {
	Meta         *models.Meta
	TopN         []intOption
	TopNDefault  int
	Years        []intOption
	YearDefault  int
	Fields       []option
	FieldDefault string
}

func intOptions(values []int, def int) []intOption {
	out := make([]intOption, len(values))
	for i, v := range values {
		out[i] = intOption{Value: v, Selected: v == def}
	}
	return out
}

func (s *Server) indexPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		def, err := analysis.ParseField(s.cfg.DistributionDefault)
		if err != nil {
			def = analysis.FieldRating
		}

		data := pageData{
			TopN:         intOptions(s.cfg.TopNOptions, s.cfg.TopNDefault),
			TopNDefault:  s.cfg.TopNDefault,
			Years:        intOptions(s.cfg.YearOptions, s.cfg.YearDefault),
			YearDefault:  s.cfg.YearDefault,
			FieldDefault: string(def),
		}
		for _, f := range analysis.Fields() {
			data.Fields = append(data.Fields, option{Value: string(f), Label: f.Label(), Selected: f == def})
		}
		if t, err := s.store.Table(); err == nil {
			meta := t.Meta()
			data.Meta = &meta
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, data); err != nil {
			logger.Error("Failed to render index page: %v", err)
		}
	}
}

package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Avinashricky211/Ytapp/internal/youtube"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	levelSuccess = "success"
	levelInfo    = "info"
	levelWarning = "warning"
	levelError   = "error"
)

// Notice is a user-visible status line rendered above the page content.
type Notice struct {
	Level string
	Text  string
}

type kindOption struct {
	Value   string
	Title   string
	Checked bool
}

type pageData struct {
	Notices []Notice
	AuthURL string
	Kinds   []kindOption
	Kind    string
	JSON    string
}

var pages = parsePages("authorize", "menu", "result")

func parsePages(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.ParseFS(
			templateFS,
			"templates/base.html",
			"templates/"+name+".html",
		))
	}
	return parsed
}

func (s *Server) render(w http.ResponseWriter, page string, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages[page].ExecuteTemplate(w, "base", data); err != nil {
		log.Err(err).Str("page", page).Msg("Could not render page")
	}
}

// kindOptions builds the radio menu; the first entry is preselected unless
// another one is given.
func kindOptions(selected youtube.Kind) []kindOption {
	kinds := youtube.Kinds()
	if selected == "" {
		selected = kinds[0]
	}

	options := make([]kindOption, 0, len(kinds))
	for _, k := range kinds {
		options = append(options, kindOption{
			Value:   string(k),
			Title:   k.Title(),
			Checked: k == selected,
		})
	}
	return options
}

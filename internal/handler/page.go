package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mlorentedev/translink/internal/display"
	"github.com/mlorentedev/translink/internal/lang"
	"github.com/mlorentedev/translink/internal/submit"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Text       string
	SourceLang string
	TargetLang string
	Languages  []lang.Option
	State      display.State
}

// Page serves the translation form. A form POST runs one submission and
// renders the page again with the output box filled in.
func Page(tr Translation, languages []lang.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{Languages: languages, State: display.State{Kind: display.Idle}}

		switch r.Method {
		case http.MethodGet:
		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
					return
				}
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			data.Text = r.PostFormValue("text")
			data.SourceLang = r.PostFormValue("source_lang")
			data.TargetLang = r.PostFormValue("target_lang")
			data.State = tr.run(r.Context(), submit.Input{
				Text:       data.Text,
				SourceLang: data.SourceLang,
				TargetLang: data.TargetLang,
			})
		default:
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			slog.Error("page: render", "err", err)
		}
	}
}

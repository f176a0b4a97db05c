package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/Brownie44l1/herbal-id/internal/pkg/web"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type page struct {
	Fatal    string
	Notice   string
	Problem  string
	Result   *Identification
	Preview  template.URL
	Filename string
}

func render(w http.ResponseWriter, status int, pg *page) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pg); err != nil {
		slog.Error("render page", "reason", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(web.HeaderContentType, web.MimeHTML)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("write page", "reason", err)
	}
}

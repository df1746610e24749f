package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates is parsed once at startup; a parse failure is a programmer error.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData is the payload passed to every template.
type pageData struct {
	Title    string
	Username string
	Flash    string
	Data     any
}

// render writes the named template, folding in the pending flash message.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name, title, username string, data any) {
	page := pageData{
		Title:    title,
		Username: username,
		Flash:    popFlash(w, r),
		Data:     data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, page); err != nil {
		s.logger.Error("Template render failed", "template", name, "error", err)
		http.Error(w, fmt.Sprintf("render error: %v", err), http.StatusInternalServerError)
	}
}

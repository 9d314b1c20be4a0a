package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"techtrends/app/logger"
	"techtrends/app/models"
)

// Template names understood by Renderer.HTML.
const (
	PageIndex    = "index"
	PageShow     = "show"
	PageNew      = "new"
	PageAbout    = "about"
	PageNotFound = "404"
)

var pageFiles = map[string]string{
	PageIndex:    "posts/index.html",
	PageShow:     "posts/show.html",
	PageNew:      "posts/new.html",
	PageAbout:    "pages/about.html",
	PageNotFound: "pages/404.html",
}

// PageData is handed to every HTML template.
type PageData struct {
	Flashes []string
	Posts   []*models.Post
	Post    *models.Post
	Form    models.Post
}

// Renderer executes the page templates, each wrapped in layout.html.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses layout.html together with every page template in fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		tmpl, err := template.ParseFS(fsys, "layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// HTML renders the named page with the given status. The page is rendered
// into a buffer first so a template failure still yields a clean 500.
func (rd *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rd.templates[name]
	if !ok {
		serverError(w, r, fmt.Errorf("unknown template %q", name))
		return
	}
	if data == nil {
		data = &PageData{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		serverError(w, r, fmt.Errorf("template %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if wantsJSON(r) {
		sendJSON(w, status, map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}

// serverError logs err and answers with a generic 500.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	sendError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

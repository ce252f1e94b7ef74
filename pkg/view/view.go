package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "layout.html"

// H is the data passed to a page template.
type H map[string]any

// CommentForm is a rejected comment submission shown again under its review.
type CommentForm struct {
	ReviewID string
	Body     string
	Errors   map[string]string
}

// Renderer executes pages wrapped in the shared layout. Every page gets the
// current user under "user" and the request path under "path".
type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func New(log *zap.Logger) (*Renderer, error) {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		base := path.Base(name)
		if base == layoutFile {
			continue
		}

		tmpl, err := template.New(layoutFile).Funcs(funcs).ParseFS(files, "templates/"+layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", base, err)
		}
		pages[base] = tmpl
	}

	return &Renderer{
		pages: pages,
		log:   log.With(zap.String("component", "view")),
	}, nil
}

// Render writes the page with the given status. The page is executed into a
// buffer first so a template error never leaves a half-written response.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, data H) {
	tmpl, ok := v.pages[name]
	if !ok {
		v.log.Error("Unknown template", zap.String("template", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = H{}
	}
	data["user"] = utils.GetCurrentUser(r.Context())
	data["path"] = r.URL.RequestURI()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		v.log.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, "not_found.html", H{"title": "Not Found"})
}

func (v *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	v.Render(w, r, status, "error.html", H{"title": http.StatusText(status), "error": message})
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

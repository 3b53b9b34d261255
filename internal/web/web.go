// Package web renders the embedded HTML templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/inkwell-blog/inkwell/types"
)

//go:embed templates
var templateFS embed.FS

// PageData is the payload handed to every template.
type PageData struct {
	// User is the resolved identity for this request, nil when anonymous.
	User *types.User

	// Error is the single message shown when a form is re-rendered after
	// a recoverable failure.
	Error string

	Posts []types.Post
	Post  types.Post
}

// Renderer holds the parsed template set, one entry per page, each paired
// with the base layout.
type Renderer struct {
	pages map[string]*template.Template
}

var pageNames = []string{
	"auth/login",
	"auth/register",
	"blog/index",
	"blog/create",
	"blog/update",
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(
			templateFS,
			"templates/base.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page. Recoverable form errors render with status
// 200; the status is the caller's call.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) {
	tmpl, ok := r.pages[page]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = tmpl.ExecuteTemplate(w, "base", data)
}

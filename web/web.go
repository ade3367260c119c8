// Package web carries the embedded HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/davewalter/shoplist/internal/model"
)

//go:embed templates/*.html static
var content embed.FS

// Templates parses all page templates. It panics on a malformed template,
// which only happens at build time.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"categoryLabel": model.CategoryLabel,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(content, "templates/*.html"))
}

// StaticHandler serves the embedded static assets.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}

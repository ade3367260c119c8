package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/davewalter/shoplist/internal/auth"
	"github.com/davewalter/shoplist/internal/flash"
)

// pageData builds the template context common to every page: title, the
// logged-in username (empty for anonymous requests), and any pending flash
// notice. Taking the flash clears it, so call this once per rendered page.
func pageData(w http.ResponseWriter, r *http.Request, title string) map[string]any {
	return map[string]any{
		"Title":    title,
		"Username": auth.Username(r.Context()),
		"Flash":    flash.Take(w, r),
	}
}

func render(w http.ResponseWriter, logger *slog.Logger, templates *template.Template, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render template", "template", name, "error", err)
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request, logger *slog.Logger, templates *template.Template, message string) {
	data := pageData(w, r, "Not Found — Shoplist")
	data["Message"] = message
	render(w, logger, templates, http.StatusNotFound, "not_found.html", data)
}

func renderServerError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, templates *template.Template) {
	data := pageData(w, r, "Error — Shoplist")
	render(w, logger, templates, http.StatusInternalServerError, "server_error.html", data)
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

package handlers

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bearhudson/movary-frontend/config"
	"github.com/bearhudson/movary-frontend/services/nextup"
	"github.com/bearhudson/movary-frontend/utils"
)

//go:embed templates/*
var homeTemplates embed.FS

type nextUpService interface {
	Lookup(ctx context.Context) nextup.Outcome
}

var _ nextUpService = (*nextup.Service)(nil)

// Page display states; each maps to exactly one fragment in the template.
const (
	stateFound = "found"
	stateEmpty = "empty"
	stateError = "error"
)

// errorFallbackHTML is served when even template execution breaks. Static on
// purpose: nothing internal may reach the response body.
const errorFallbackHTML = `<!DOCTYPE html><html><body><h1>Server Error</h1></body></html>`

// HomeHandler renders the single next-up page on GET /.
type HomeHandler struct {
	cfg     *config.Settings
	service nextUpService
	tmpl    *template.Template
	logger  *slog.Logger
}

// NewHomeHandler parses the embedded page template and returns the handler.
func NewHomeHandler(cfg *config.Settings, service nextUpService, logger *slog.Logger) (*HomeHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.ParseFS(homeTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse home templates: %w", err)
	}
	return &HomeHandler{cfg: cfg, service: service, tmpl: tmpl, logger: logger}, nil
}

// homePage is the view model handed to the template.
type homePage struct {
	State       string
	Title       string
	PosterURL   string
	ReleaseYear string
	Overview    string
	AddedAt     string
	NextShowing string
}

// ServeHTTP runs the lookup and renders one of three fragments. The response
// is always 200 text/html; failures change the fragment, not the status.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("home page render panicked",
				"panic", rec,
				"requestId", utils.RequestID(r.Context()),
			)
			h.render(w, homePage{State: stateError, NextShowing: utils.FormatNextShowing(h.cfg.NextShowing)})
		}
	}()

	out := h.service.Lookup(r.Context())

	page := homePage{NextShowing: utils.FormatNextShowing(h.cfg.NextShowing)}
	switch out.Kind {
	case nextup.Found:
		movie := out.Entry.Movie
		page.State = stateFound
		page.Title = movie.Title
		page.PosterURL = h.posterURL(movie.PosterPath)
		page.ReleaseYear = movie.ReleaseYear()
		page.Overview = movie.Overview
		page.AddedAt = out.Entry.AddedAt
	case nextup.Failed:
		h.logger.Error("next-up lookup failed",
			"error", out.Err,
			"requestId", utils.RequestID(r.Context()),
		)
		page.State = stateError
	default:
		page.State = stateEmpty
	}

	h.render(w, page)
}

// render executes the template into a buffer first so a late failure can
// still fall back to the static error shell with clean headers.
func (h *HomeHandler) render(w http.ResponseWriter, page homePage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "home.html", page); err != nil {
		h.logger.Error("home template execution failed", "error", err)
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, errorFallbackHTML)
		return
	}

	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// posterURL joins the tracker base URL with a relative poster path. Absolute
// poster URLs pass through untouched.
func (h *HomeHandler) posterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	if strings.HasPrefix(posterPath, "http://") || strings.HasPrefix(posterPath, "https://") {
		return posterPath
	}
	return strings.TrimRight(h.cfg.BaseURL, "/") + "/" + strings.TrimLeft(posterPath, "/")
}

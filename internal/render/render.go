// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the studio page.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"graphicsstudio/internal/markdown"
	"graphicsstudio/internal/middleware"
	"graphicsstudio/internal/models"
	"graphicsstudio/internal/studio"
)

//go:embed templates/studio/*.html
var studioFS embed.FS

// PageData holds all data passed to studio templates.
type PageData struct {
	Title     string
	CSRFToken string // set by the renderer from the request context
	State     studio.State

	// Saved panel.
	Search  string
	Results []models.SavedConcept

	// Provider picker; empty when the agent is remote.
	Providers      []string
	ActiveProvider string
}

// Renderer executes the studio templates.
type Renderer struct {
	tmpl *template.Template
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// New parses the embedded templates. When devMode is true the page loads
// the unminified HTMX build and shows a development badge.
func New(devMode bool) (*Renderer, error) {
	funcs := template.FuncMap{
		"isDev":        func() bool { return devMode },
		"markdown":     markdown.HTML,
		"platforms":    models.Platforms,
		"aspectRatios": func() []string { return models.AspectRatios },
		"hashtags":     func(tags []string) string { return strings.Join(tags, " ") },
		"inc":          func(i int) int { return i + 1 },
		// swatch returns a CSS colour for a palette chip, or transparent
		// when the agent sent something that is not a hex code.
		"swatch": func(hex string) template.CSS {
			if hexColor.MatchString(hex) {
				return template.CSS(hex)
			}
			return "transparent"
		},
		"savedAt": func(s models.SavedConcept) string {
			t := s.CreatedAt()
			if t.IsZero() {
				return s.Timestamp
			}
			return t.Local().Format("Jan 2, 2006 15:04")
		},
	}

	tmpl, err := template.New("studio").Funcs(funcs).ParseFS(studioFS, "templates/studio/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders the full studio page, or just the workspace for HTMX
// requests.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, data *PageData) {
	name := "layout"
	if IsHTMX(r) {
		name = "workspace"
	}
	rn.Partial(w, r, name, data)
}

// Partial renders a single named template such as "workspace" or
// "saved_list". Output is buffered so a template error never leaves a
// half-written response.
func (rn *Renderer) Partial(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	data.CSRFToken = middleware.CSRFToken(r)
	if data.Title == "" {
		data.Title = "Graphics Studio"
	}

	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("template execution failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

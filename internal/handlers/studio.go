// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for Graphics Studio. They
// translate form posts and HTMX requests into studio operations and render
// the resulting state; all session logic lives in the studio package.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"graphicsstudio/internal/concept"
	"graphicsstudio/internal/models"
	"graphicsstudio/internal/render"
	"graphicsstudio/internal/slug"
	"graphicsstudio/internal/studio"
)

// ProviderSwitcher is the part of the AI provider registry the page needs
// for its model picker.
type ProviderSwitcher interface {
	Available() []string
	ActiveName() string
	SetActive(name string) error
}

// Studio groups the studio page handlers and their dependencies.
type Studio struct {
	studio    *studio.Studio
	renderer  *render.Renderer
	providers ProviderSwitcher // nil when the agent is remote
}

// NewStudio creates the studio handler group. providers may be nil, which
// hides the model picker.
func NewStudio(s *studio.Studio, renderer *render.Renderer, providers ProviderSwitcher) *Studio {
	return &Studio{studio: s, renderer: renderer, providers: providers}
}

// pageData snapshots the studio for rendering. The saved panel shows the
// entries matching search.
func (h *Studio) pageData(search string) *render.PageData {
	data := &render.PageData{
		State:   h.studio.Snapshot(),
		Search:  search,
		Results: h.studio.Search(search),
	}
	if h.providers != nil {
		data.Providers = h.providers.Available()
		data.ActiveProvider = h.providers.ActiveName()
	}
	return data
}

// respond renders the named partial for HTMX requests and redirects plain
// form posts back to the page.
func (h *Studio) respond(w http.ResponseWriter, r *http.Request, partial string, data *render.PageData) {
	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderer.Partial(w, r, partial, data)
}

// Index renders the studio page.
func (h *Studio) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, h.pageData(searchTerm(r.URL.Query().Get("q"))))
}

// Generate asks the agent for a concept from the submitted prompt. The
// request blocks until the agent answers; the workspace is re-rendered
// with the resulting concept or error.
func (h *Studio) Generate(w http.ResponseWriter, r *http.Request) {
	prompt := r.FormValue("prompt")
	aspectRatio := r.FormValue("aspect_ratio")
	platform, _ := models.ParsePlatform(r.FormValue("platform"))

	if msg := validatePrompt(prompt, aspectRatio); msg != "" {
		h.studio.SetPlatform(platform)
		data := h.pageData("")
		// Shown in the error banner of this response only; the studio
		// keeps its previous prompt and error state.
		data.State.Prompt = prompt
		data.State.Error = msg
		h.renderer.Page(w, r, data)
		return
	}

	if !h.studio.Generate(r.Context(), prompt, platform, aspectRatio) {
		// Empty prompt or a request already in flight: keep the form edits.
		h.studio.SetPlatform(platform)
		h.studio.SetAspectRatio(aspectRatio)
		if strings.TrimSpace(prompt) != "" {
			slog.Debug("generate ignored, request in flight")
		}
	}
	h.respond(w, r, "workspace", h.pageData(""))
}

// Variation requests a fresh take on the current query.
func (h *Studio) Variation(w http.ResponseWriter, r *http.Request) {
	if !h.studio.RequestVariation(r.Context()) {
		slog.Debug("variation ignored", "reason", "no query or request in flight")
	}
	h.respond(w, r, "workspace", h.pageData(""))
}

// Save stores the displayed concept and returns the refreshed saved list.
func (h *Studio) Save(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.studio.Save(r.Context()); !ok {
		slog.Debug("save ignored, nothing displayed")
	}
	h.respond(w, r, "saved_list", h.pageData(""))
}

// LoadSaved displays a saved concept.
func (h *Studio) LoadSaved(w http.ResponseWriter, r *http.Request) {
	if !h.studio.LoadSaved(chi.URLParam(r, "id")) {
		http.Error(w, "Saved concept not found", http.StatusNotFound)
		return
	}
	h.respond(w, r, "workspace", h.pageData(""))
}

// DeleteSaved removes a saved concept and returns the saved list, still
// filtered by the active search term. Deleting an unknown id changes
// nothing.
func (h *Studio) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	h.studio.DeleteSaved(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, "saved_list", h.pageData(searchTerm(r.FormValue("q"))))
}

// SearchSaved filters the saved list by title and prompt.
func (h *Studio) SearchSaved(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(searchTerm(r.URL.Query().Get("q")))
	if !render.IsHTMX(r) {
		h.renderer.Page(w, r, data)
		return
	}
	h.renderer.Partial(w, r, "saved_list", data)
}

// Export serves the displayed concept as plain text.
func (h *Studio) Export(w http.ResponseWriter, r *http.Request) {
	c := h.studio.Snapshot().Concept
	if c == nil {
		http.Error(w, "No concept to export", http.StatusNotFound)
		return
	}
	writeText(w, slug.Filename(c.ConceptTitle, "txt"), concept.ExportText(*c))
}

// ExportSaved serves a saved concept as plain text.
func (h *Studio) ExportSaved(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.studio.Saved(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Saved concept not found", http.StatusNotFound)
		return
	}
	writeText(w, slug.Filename(entry.Concept.ConceptTitle, "txt"), concept.ExportText(entry.Concept))
}

// DismissError clears the error banner.
func (h *Studio) DismissError(w http.ResponseWriter, r *http.Request) {
	h.studio.DismissError()
	h.respond(w, r, "workspace", h.pageData(""))
}

// Sample toggles sample mode. The "enabled" form value must be a boolean.
func (h *Studio) Sample(w http.ResponseWriter, r *http.Request) {
	enabled, err := strconv.ParseBool(r.FormValue("enabled"))
	if err != nil {
		http.Error(w, "enabled must be true or false", http.StatusBadRequest)
		return
	}
	h.studio.SetSampleMode(enabled)
	h.respond(w, r, "workspace", h.pageData(""))
}

// SetProvider switches the active AI provider at runtime and returns the
// refreshed picker.
func (h *Studio) SetProvider(w http.ResponseWriter, r *http.Request) {
	if h.providers == nil {
		http.Error(w, "Provider switching is not available", http.StatusNotFound)
		return
	}

	name := strings.TrimSpace(r.FormValue("provider"))
	if name == "" {
		http.Error(w, "No provider specified.", http.StatusBadRequest)
		return
	}
	if err := h.providers.SetActive(name); err != nil {
		slog.Warn("failed to switch AI provider", "provider", name, "error", err)
		http.Error(w, fmt.Sprintf("Cannot switch to %q: provider not available.", name), http.StatusBadRequest)
		return
	}

	slog.Info("ai provider switched", "provider", name)
	h.respond(w, r, "provider_select", h.pageData(""))
}

// writeText sends an export as a downloadable text file.
func writeText(w http.ResponseWriter, filename, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(text))
}

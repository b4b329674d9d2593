// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Graphics Studio web server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"graphicsstudio/internal/handlers"
	"graphicsstudio/internal/middleware"
	"graphicsstudio/web"
)

// Options configures the router.
type Options struct {
	// SecureCookies marks the CSRF cookie Secure (production over HTTPS).
	SecureCookies bool

	// GenerateLimiter throttles /generate and /variation per client IP.
	// Nil disables throttling.
	GenerateLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(studio *handlers.Studio, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check and assets, outside CSRF.
	r.Get("/health", healthHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.StaticFS())))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		r.Get("/", studio.Index)

		// Agent requests are the expensive ones.
		r.Group(func(r chi.Router) {
			if opts.GenerateLimiter != nil {
				r.Use(opts.GenerateLimiter.Middleware)
			}
			r.Post("/generate", studio.Generate)
			r.Post("/variation", studio.Variation)
		})

		r.Post("/save", studio.Save)
		r.Get("/export", studio.Export)
		r.Post("/error/dismiss", studio.DismissError)
		r.Post("/sample", studio.Sample)
		r.Post("/ai/provider", studio.SetProvider)

		r.Route("/saved", func(r chi.Router) {
			r.Get("/", studio.SearchSaved)
			r.Post("/{id}/load", studio.LoadSaved)
			r.Get("/{id}/export", studio.ExportSaved)
			r.Delete("/{id}", studio.DeleteSaved)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

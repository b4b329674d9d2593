// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"graphicsstudio/internal/agent"
	"graphicsstudio/internal/handlers"
	"graphicsstudio/internal/middleware"
	"graphicsstudio/internal/render"
	"graphicsstudio/internal/store"
	"graphicsstudio/internal/studio"
)

type okAgent struct{}

func (okAgent) Call(context.Context, string, string) (*agent.Response, error) {
	return agent.Success(`{"concept_title":"Routed"}`), nil
}

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	s := studio.New(context.Background(), okAgent{}, store.NewSavedConcepts(store.NewMemoryKV()), "")
	rn, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return New(handlers.NewStudio(s, rn, nil), Options{GenerateLimiter: limiter})
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRoutes(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/saved", http.StatusOK},
		{http.MethodGet, "/export", http.StatusNotFound},
		{http.MethodGet, "/saved/123/export", http.StatusNotFound},
		{http.MethodGet, "/static/studio.js", http.StatusOK},
		{http.MethodGet, "/static/studio.css", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPut, "/generate", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	h := newTestRouter(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy not set")
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("X-Content-Type-Options not set")
	}
}

// post sends an HTMX form post carrying a valid CSRF cookie/header pair.
func post(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set(middleware.CSRFHeaderName, "tok")
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "tok"})
	req.RemoteAddr = "192.0.2.10:4000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCSRFRequiredOnMutations(t *testing.T) {
	h := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("prompt=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("POST without token: status %d, want 403", rr.Code)
	}

	rr = post(h, "/generate", url.Values{"prompt": {"hi"}})
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Routed") {
		t.Errorf("POST with token: status %d", rr.Code)
	}
}

func TestGenerateRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	h := newTestRouter(t, limiter)

	for i := 0; i < 2; i++ {
		if rr := post(h, "/generate", url.Values{"prompt": {"hi"}}); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rr.Code)
		}
	}
	if rr := post(h, "/variation", url.Values{}); rr.Code != http.StatusTooManyRequests {
		t.Errorf("third agent request: status %d, want 429", rr.Code)
	}
	// Other routes are not throttled.
	if rr := post(h, "/error/dismiss", url.Values{}); rr.Code != http.StatusOK {
		t.Errorf("dismiss: status %d, want 200", rr.Code)
	}
}

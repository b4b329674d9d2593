// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the studio
// handler tests: a scripted agent, an in-memory store and a chi router
// mounting every handler.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"graphicsstudio/internal/agent"
	"graphicsstudio/internal/render"
	"graphicsstudio/internal/store"
	"graphicsstudio/internal/studio"
)

// stubAgent answers every call with the same outcome and records messages.
type stubAgent struct {
	mu       sync.Mutex
	resp     *agent.Response
	err      error
	messages []string
}

func (a *stubAgent) Call(_ context.Context, message, _ string) (*agent.Response, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
	return a.resp, a.err
}

func (a *stubAgent) sent() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

func conceptAgent(title string) *stubAgent {
	return &stubAgent{resp: agent.Success(`{"concept_title":"` + title + `",` +
		`"color_palette":[{"name":"Sun","hex":"#FFCC00","usage":"Background"}],` +
		`"design_tips":["Keep it **bold**"]}`)}
}

// fakeProviders implements ProviderSwitcher.
type fakeProviders struct {
	names  []string
	active string
}

func (f *fakeProviders) Available() []string { return f.names }
func (f *fakeProviders) ActiveName() string  { return f.active }
func (f *fakeProviders) SetActive(name string) error {
	for _, n := range f.names {
		if n == name {
			f.active = name
			return nil
		}
	}
	return errors.New("not available")
}

type testEnv struct {
	router http.Handler
	studio *studio.Studio
	kv     *store.MemoryKV
}

func newTestEnv(t *testing.T, a agent.Agent, providers ProviderSwitcher) *testEnv {
	t.Helper()

	kv := store.NewMemoryKV()
	s := studio.New(context.Background(), a, store.NewSavedConcepts(kv), "agent-1")
	rn, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	h := NewStudio(s, rn, providers)

	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Post("/generate", h.Generate)
	r.Post("/variation", h.Variation)
	r.Post("/save", h.Save)
	r.Get("/saved", h.SearchSaved)
	r.Post("/saved/{id}/load", h.LoadSaved)
	r.Delete("/saved/{id}", h.DeleteSaved)
	r.Get("/saved/{id}/export", h.ExportSaved)
	r.Get("/export", h.Export)
	r.Post("/error/dismiss", h.DismissError)
	r.Post("/sample", h.Sample)
	r.Post("/ai/provider", h.SetProvider)

	return &testEnv{router: r, studio: s, kv: kv}
}

// do sends a request; form values go in the body for POST requests.
func (e *testEnv) do(t *testing.T, method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// generate submits the prompt form as HTMX and fails the test on a non-200.
func (e *testEnv) generate(t *testing.T, prompt, platform string) *httptest.ResponseRecorder {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/generate", url.Values{"prompt": {prompt}, "platform": {platform}}, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body %q", rr.Code, rr.Body.String())
	}
	return rr
}

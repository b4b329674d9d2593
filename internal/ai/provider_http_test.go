// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------- Helpers ----------

// newTestServer creates an httptest.Server that responds with the given status
// code and body bytes. The server is closed when the test finishes.
func newTestServer(t *testing.T, statusCode int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// capture records the last request a test server received.
type capture struct {
	path    string
	headers http.Header
	body    map[string]any
}

func newCaptureServer(t *testing.T, c *capture, reply []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.path = r.URL.Path
		c.headers = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &c.body)
		w.Header().Set("Content-Type", "application/json")
		w.Write(reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// openAISuccessBody builds a chat completions response with one choice.
func openAISuccessBody(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": text},
		}},
	})
	return b
}

// claudeSuccessBody builds a Messages API response from text blocks.
func claudeSuccessBody(texts ...string) []byte {
	content := make([]map[string]string, 0, len(texts))
	for _, t := range texts {
		content = append(content, map[string]string{"type": "text", "text": t})
	}
	b, _ := json.Marshal(map[string]any{"content": content, "stop_reason": "end_turn"})
	return b
}

// geminiSuccessBody builds a generateContent response with one candidate.
func geminiSuccessBody(parts ...string) []byte {
	var ps []geminiPart
	for _, p := range parts {
		ps = append(ps, geminiPart{Text: p})
	}
	b, _ := json.Marshal(geminiResponse{
		Candidates: []geminiCandidate{{Content: geminiContent{Role: "model", Parts: ps}}},
	})
	return b
}

// =====================================================================
// OpenAI-compatible providers (OpenAI, Mistral)
// =====================================================================

func TestChatCompletionsProviders(t *testing.T) {
	constructors := map[string]func(ProviderConfig) *openAIProvider{
		OpenAI:  newOpenAI,
		Mistral: newMistral,
	}

	for name, newProvider := range constructors {
		t.Run(name, func(t *testing.T) {
			var c capture
			srv := newCaptureServer(t, &c, openAISuccessBody(`{"concept_title":"X"}`))

			p := newProvider(ProviderConfig{APIKey: "sk-test", Model: "model-x", BaseURL: srv.URL + "/v1"})
			if p.Name() != name {
				t.Errorf("Name() = %q, want %q", p.Name(), name)
			}

			got, err := p.Generate(context.Background(), "system prompt", "user prompt")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got != `{"concept_title":"X"}` {
				t.Errorf("Generate = %q", got)
			}

			if !strings.HasSuffix(c.path, "/chat/completions") {
				t.Errorf("path = %q, want suffix /chat/completions", c.path)
			}
			if auth := c.headers.Get("Authorization"); auth != "Bearer sk-test" {
				t.Errorf("Authorization = %q", auth)
			}
			if c.body["model"] != "model-x" {
				t.Errorf("model = %v", c.body["model"])
			}
			msgs, _ := c.body["messages"].([]any)
			if len(msgs) != 2 {
				t.Fatalf("messages = %v, want 2", c.body["messages"])
			}
			first, _ := msgs[0].(map[string]any)
			second, _ := msgs[1].(map[string]any)
			if first["role"] != "system" || second["role"] != "user" {
				t.Errorf("roles = %v, %v", first["role"], second["role"])
			}
		})
	}
}

func TestChatCompletionsHTTPError(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, []byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))

	p := newOpenAI(ProviderConfig{APIKey: "bad", Model: "gpt-4o", BaseURL: srv.URL})
	_, err := p.Generate(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q should mention status 401", err)
	}
}

func TestChatCompletionsEmptyChoices(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"id":"x","object":"chat.completion","choices":[]}`))

	p := newMistral(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	_, err := p.Generate(context.Background(), "s", "u")
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("expected no choices error, got %v", err)
	}
}

func TestChatCompletionsCancelledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, openAISuccessBody("ok"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	if _, err := p.Generate(ctx, "s", "u"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestChatCompletionsConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for closed server")
	}
}

// =====================================================================
// Claude
// =====================================================================

func TestClaudeGenerate(t *testing.T) {
	var c capture
	srv := newCaptureServer(t, &c, claudeSuccessBody(`{"concept_title":`, `"X"}`))

	p := newClaude(ProviderConfig{APIKey: "sk-ant", Model: "claude-sonnet-4-5", BaseURL: srv.URL + "/"})
	if p.Name() != Claude {
		t.Errorf("Name() = %q", p.Name())
	}

	got, err := p.Generate(context.Background(), "be a designer", "coffee launch")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != `{"concept_title":"X"}` {
		t.Errorf("Generate = %q, want joined text blocks", got)
	}

	if c.path != "/v1/messages" {
		t.Errorf("path = %q", c.path)
	}
	if c.headers.Get("x-api-key") != "sk-ant" {
		t.Errorf("x-api-key = %q", c.headers.Get("x-api-key"))
	}
	if c.headers.Get("anthropic-version") != "2023-06-01" {
		t.Errorf("anthropic-version = %q", c.headers.Get("anthropic-version"))
	}
	if c.body["system"] != "be a designer" {
		t.Errorf("system = %v", c.body["system"])
	}
	if c.body["max_tokens"] != float64(claudeMaxTokens) {
		t.Errorf("max_tokens = %v", c.body["max_tokens"])
	}

	wantTurns := []any{
		map[string]any{"role": "user", "content": "coffee launch"},
		map[string]any{"role": "assistant", "content": claudePrefill},
	}
	if diff := cmp.Diff(wantTurns, c.body["messages"]); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestClaudeGenerateRestoresPrefill(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want string
	}{
		{"continuation", claudeSuccessBody(`"concept_title":"Y"}`), `{"concept_title":"Y"}`},
		{"full object", claudeSuccessBody(`{"concept_title":"Z"}`), `{"concept_title":"Z"}`},
		{
			"token limit",
			[]byte(`{"content":[{"type":"text","text":"\"concept_title\":\"Cut"}],"stop_reason":"max_tokens"}`),
			`{"concept_title":"Cut`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.body)
			got, err := newClaude(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL}).
				Generate(context.Background(), "s", "u")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Generate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClaudeGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http error", http.StatusTooManyRequests, `{"error":"rate limited"}`, "rate limited"},
		{
			"api error",
			http.StatusUnauthorized,
			`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`,
			"authentication_error: invalid x-api-key",
		},
		{"malformed", http.StatusOK, `not json`, "invalid response"},
		{"no text", http.StatusOK, `{"content":[{"type":"tool_use"}],"stop_reason":"tool_use"}`, "no text content"},
		{"empty", http.StatusOK, `{"content":[]}`, "no text content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, []byte(tt.body))
			p := newClaude(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

			_, err := p.Generate(context.Background(), "s", "u")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// =====================================================================
// Gemini
// =====================================================================

func TestGeminiGenerate(t *testing.T) {
	var c capture
	srv := newCaptureServer(t, &c, geminiSuccessBody(`{"concept_title":"G"}`))

	p := newGemini(ProviderConfig{APIKey: "g-key", Model: "gemini-2.5-flash", BaseURL: srv.URL})
	if p.Name() != Gemini {
		t.Errorf("Name() = %q", p.Name())
	}

	got, err := p.Generate(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != `{"concept_title":"G"}` {
		t.Errorf("Generate = %q", got)
	}

	if c.path != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", c.path)
	}
	if c.headers.Get("x-goog-api-key") != "g-key" {
		t.Errorf("x-goog-api-key = %q", c.headers.Get("x-goog-api-key"))
	}
	cfg, _ := c.body["generationConfig"].(map[string]any)
	if cfg["responseMimeType"] != "application/json" {
		t.Errorf("generationConfig = %v", c.body["generationConfig"])
	}
	if _, ok := c.body["system_instruction"]; !ok {
		t.Error("system_instruction missing from request")
	}
}

func TestGeminiGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http error", http.StatusBadRequest, `{"error":{"message":"bad model"}}`, "bad model"},
		{"malformed", http.StatusOK, `{`, "unmarshal"},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, "no candidates"},
		{"empty parts", http.StatusOK, `{"candidates":[{"content":{"parts":[]}}]}`, "no text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, []byte(tt.body))
			p := newGemini(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

			_, err := p.Generate(context.Background(), "s", "u")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// =====================================================================
// Registry over real HTTP providers
// =====================================================================

func TestRegistryGenerate_WithRealHTTPProviders(t *testing.T) {
	openaiSrv := newTestServer(t, http.StatusOK, openAISuccessBody("openai response"))
	claudeSrv := newTestServer(t, http.StatusOK, claudeSuccessBody("claude response"))
	geminiSrv := newTestServer(t, http.StatusOK, geminiSuccessBody("gemini response"))
	mistralSrv := newTestServer(t, http.StatusOK, openAISuccessBody("mistral response"))

	reg := NewRegistry(OpenAI, map[string]ProviderConfig{
		OpenAI:  {APIKey: "ok1", Model: "gpt-4o", BaseURL: openaiSrv.URL},
		Claude:  {APIKey: "ok2", Model: "claude-sonnet-4-5", BaseURL: claudeSrv.URL},
		Gemini:  {APIKey: "ok3", Model: "gemini-pro", BaseURL: geminiSrv.URL},
		Mistral: {APIKey: "ok4", Model: "mistral-large", BaseURL: mistralSrv.URL},
	})

	for _, name := range ProviderNames {
		t.Run(name, func(t *testing.T) {
			p, err := reg.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", name, err)
			}
			got, err := p.Generate(context.Background(), "system", "user")
			if err != nil {
				t.Fatalf("Generate with %s: %v", name, err)
			}
			want := name + " response"
			if name == Claude {
				want = claudePrefill + want
			}
			if got != want {
				t.Errorf("Generate with %s: got %q", name, got)
			}
		})
	}
}

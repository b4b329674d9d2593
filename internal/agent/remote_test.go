// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func newAgentServer(t *testing.T, status int, body string, got *remoteRequest, headers *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		if headers != nil {
			*headers = r.Header.Clone()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteAgentRequest(t *testing.T) {
	var got remoteRequest
	var headers http.Header
	srv := newAgentServer(t, http.StatusOK, `{"response":"{}"}`, &got, &headers)

	a := NewRemoteAgent(srv.URL, "secret", "user-1")
	if _, err := uuid.Parse(a.SessionID()); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", a.SessionID(), err)
	}

	if _, err := a.Call(context.Background(), "hello", "agent-9"); err != nil {
		t.Fatalf("Call: %v", err)
	}

	want := remoteRequest{UserID: "user-1", AgentID: "agent-9", SessionID: a.SessionID(), Message: "hello"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
	if headers.Get("x-api-key") != "secret" {
		t.Errorf("x-api-key = %q", headers.Get("x-api-key"))
	}

	// Session id is stable across calls.
	var again remoteRequest
	srv2 := newAgentServer(t, http.StatusOK, `{}`, &again, nil)
	a.url = srv2.URL
	_, _ = a.Call(context.Background(), "variation", "agent-9")
	if again.SessionID != a.SessionID() {
		t.Errorf("session id changed between calls: %q vs %q", again.SessionID, a.SessionID())
	}
}

func TestRemoteAgentResults(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{"string response", `{"response":"Here you go: {\"concept_title\":\"X\"}"}`, `Here you go: {"concept_title":"X"}`},
		{"object response", `{"response":{"concept_title":"X"}}`, map[string]any{"concept_title": "X"}},
		{"whole body", `{"concept_title":"Y"}`, map[string]any{"concept_title": "Y"}},
		{"plain text", `not json at all`, "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAgentServer(t, http.StatusOK, tt.body, nil, nil)

			resp, err := NewRemoteAgent(srv.URL, "", "u").Call(context.Background(), "m", "a")
			if err != nil {
				t.Fatalf("Call: %v", err)
			}
			if !resp.Success || resp.Response.Status != StatusSuccess {
				t.Fatalf("expected success, got %+v", resp)
			}
			if diff := cmp.Diff(tt.want, resp.Response.Result); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoteAgentFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail", http.StatusUnprocessableEntity, `{"detail":"agent not found"}`, "agent not found"},
		{"nested error", http.StatusUnauthorized, `{"error":{"message":"invalid api key"}}`, "invalid api key"},
		{"error string", http.StatusBadRequest, `{"error":"bad input"}`, "bad input"},
		{"message", http.StatusInternalServerError, `{"message":"boom"}`, "boom"},
		{"no body", http.StatusBadGateway, ``, "Agent request failed: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAgentServer(t, tt.status, tt.body, nil, nil)

			resp, err := NewRemoteAgent(srv.URL, "", "u").Call(context.Background(), "m", "a")
			if err != nil {
				t.Fatalf("Call returned fault %v, want unsuccessful response", err)
			}
			if resp.Success {
				t.Fatal("expected unsuccessful response")
			}
			if resp.Error != tt.want {
				t.Errorf("Error = %q, want %q", resp.Error, tt.want)
			}
		})
	}
}

func TestRemoteAgentStatusEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *Payload
	}{
		{
			name: "agent error",
			body: `{"response":{"status":"error","result":null,"message":"Agent quota exceeded"}}`,
			want: &Payload{Status: "error", Message: "Agent quota exceeded"},
		},
		{
			name: "agent success",
			body: `{"response":{"status":"success","result":"{\"concept_title\":\"X\"}"}}`,
			want: &Payload{Status: StatusSuccess, Result: `{"concept_title":"X"}`},
		},
		{
			name: "top-level envelope",
			body: `{"status":"failed","message":"model overloaded"}`,
			want: &Payload{Status: "failed", Message: "model overloaded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAgentServer(t, http.StatusOK, tt.body, nil, nil)

			resp, err := NewRemoteAgent(srv.URL, "", "u").Call(context.Background(), "m", "a")
			if err != nil {
				t.Fatalf("Call: %v", err)
			}
			if !resp.Success {
				t.Fatalf("expected transport success, got %+v", resp)
			}
			if diff := cmp.Diff(tt.want, resp.Response); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoteAgentBodyLimit(t *testing.T) {
	body := `{"response":"` + strings.Repeat("x", 2*maxBodyBytes) + `"}`
	srv := newAgentServer(t, http.StatusOK, body, nil, nil)

	resp, err := NewRemoteAgent(srv.URL, "", "u").Call(context.Background(), "m", "a")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	got, ok := resp.Response.Result.(string)
	if !ok {
		t.Fatalf("Result = %T, want truncated string body", resp.Response.Result)
	}
	if len(got) != maxBodyBytes {
		t.Errorf("read %d bytes, want %d", len(got), maxBodyBytes)
	}
}

func TestRemoteAgentFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	if _, err := NewRemoteAgent(srv.URL, "", "u").Call(context.Background(), "m", "a"); err == nil {
		t.Error("expected fault for unreachable agent")
	}
}

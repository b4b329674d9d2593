// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// maxBodyBytes bounds how much of an agent reply is read.
const maxBodyBytes = 1 << 20

// RemoteAgent calls a hosted agent over its inference REST endpoint.
// One session id is minted per RemoteAgent so the agent can thread
// variations onto the original request.
type RemoteAgent struct {
	url       string
	apiKey    string
	userID    string
	sessionID string
	client    *http.Client
}

// NewRemoteAgent creates a client for the agent endpoint at url.
func NewRemoteAgent(url, apiKey, userID string) *RemoteAgent {
	return &RemoteAgent{
		url:       url,
		apiKey:    apiKey,
		userID:    userID,
		sessionID: uuid.NewString(),
		client:    &http.Client{Timeout: 120 * time.Second},
	}
}

// SessionID returns the session id sent with every call.
func (a *RemoteAgent) SessionID() string { return a.sessionID }

type remoteRequest struct {
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Call posts the message. A 2xx reply is a success whose result is the
// body's "response" field (or the whole body when absent). When that
// field is a status envelope its status, result and message are passed
// through as they are. Any other HTTP status is an unsuccessful response
// carrying the agent's error text.
func (a *RemoteAgent) Call(ctx context.Context, message, agentID string) (*Response, error) {
	payload, err := json.Marshal(remoteRequest{
		UserID:    a.userID,
		AgentID:   agentID,
		SessionID: a.sessionID,
		Message:   message,
	})
	if err != nil {
		return nil, fmt.Errorf("agent marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("agent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("x-api-key", a.apiKey)
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("agent read body: %w", err)
	}

	slog.Debug("remote agent replied",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Failure(errorText(resp.StatusCode, body)), nil
	}
	if p, ok := envelope(body); ok {
		return &Response{Success: true, Response: p}, nil
	}
	return Success(resultOf(body)), nil
}

// envelope reads a {"status","result","message"} object from the body's
// "response" field, or from the body itself when that field is absent.
func envelope(body []byte) (*Payload, bool) {
	if !gjson.ValidBytes(body) {
		return nil, false
	}
	r := gjson.GetBytes(body, "response")
	if !r.Exists() {
		r = gjson.ParseBytes(body)
	}
	if !r.IsObject() {
		return nil, false
	}
	status := r.Get("status")
	if status.Type != gjson.String {
		return nil, false
	}

	p := &Payload{
		Status:  status.String(),
		Message: r.Get("message").String(),
	}
	if res := r.Get("result"); res.Exists() && res.Type != gjson.Null {
		p.Result = res.Value()
	}
	return p, true
}

// resultOf picks the agent's answer out of a 2xx body.
func resultOf(body []byte) any {
	if !gjson.ValidBytes(body) {
		return string(body)
	}
	if r := gjson.GetBytes(body, "response"); r.Exists() {
		return r.Value()
	}
	return gjson.ParseBytes(body).Value()
}

// errorText extracts a human-readable error from a non-2xx body.
func errorText(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"detail", "error.message", "error", "message"} {
			if r := gjson.GetBytes(body, path); r.Exists() && r.Type == gjson.String && r.String() != "" {
				return r.String()
			}
		}
	}
	return fmt.Sprintf("Agent request failed: %s", http.StatusText(status))
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	claudeAPIVersion = "2023-06-01"

	// claudeMaxTokens bounds a concept reply; a full concept is well under 2k tokens.
	claudeMaxTokens = 4096

	// claudePrefill opens the assistant turn so the reply starts inside the
	// concept object instead of with prose.
	claudePrefill = "{"

	// claudeMaxReply bounds how much of a Messages API reply is read.
	claudeMaxReply = 1 << 20
)

// claudeProvider talks to the Anthropic Messages API (POST /v1/messages).
type claudeProvider struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func newClaude(cfg ProviderConfig) *claudeProvider {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.anthropic.com"
	}
	return &claudeProvider{
		endpoint: strings.TrimRight(base, "/") + "/v1/messages",
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *claudeProvider) Name() string { return Claude }

// claudeTurn is one entry of the Messages API conversation.
type claudeTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generate asks for a single concept. The assistant turn is prefilled with
// an opening brace, which the model continues; the brace is restored on
// the returned text. A reply cut short by the token limit is still
// returned: the concept parser repairs truncated objects.
func (p *claudeProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"model":      p.model,
		"max_tokens": claudeMaxTokens,
		"system":     systemPrompt,
		"messages": []claudeTurn{
			{Role: "user", Content: userPrompt},
			{Role: "assistant", Content: claudePrefill},
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("claude request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", claudeAPIVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude http: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, claudeMaxReply))
	if err != nil {
		return "", fmt.Errorf("claude read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, claudeErrorText(raw))
	}
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("claude: invalid response body (%d bytes)", len(raw))
	}

	reply := gjson.ParseBytes(raw)
	stop := reply.Get("stop_reason").String()

	var text strings.Builder
	reply.Get("content").ForEach(func(_, block gjson.Result) bool {
		if block.Get("type").String() == "text" {
			text.WriteString(block.Get("text").String())
		}
		return true
	})
	if text.Len() == 0 {
		return "", fmt.Errorf("claude: no text content in response (stop_reason %q)", stop)
	}
	if stop == "max_tokens" {
		slog.Warn("claude reply hit the token limit", "model", p.model, "max_tokens", claudeMaxTokens)
	}

	out := text.String()
	if !strings.HasPrefix(strings.TrimSpace(out), claudePrefill) {
		out = claudePrefill + out
	}
	return out, nil
}

// claudeErrorText returns "type: message" from an Anthropic error body, or
// the raw body when it has another shape.
func claudeErrorText(raw []byte) string {
	msg := gjson.GetBytes(raw, "error.message")
	if msg.Type != gjson.String {
		return strings.TrimSpace(string(raw))
	}
	if kind := gjson.GetBytes(raw, "error.type").String(); kind != "" {
		return kind + ": " + msg.String()
	}
	return msg.String()
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"graphicsstudio/internal/ai"
)

// ProviderAgent answers design requests with an LLM provider from the
// registry. The agentID selects a provider by name when one is registered
// under it; otherwise the registry's active provider is used.
type ProviderAgent struct {
	registry *ai.Registry
}

// NewProviderAgent creates an agent backed by registry.
func NewProviderAgent(registry *ai.Registry) *ProviderAgent {
	return &ProviderAgent{registry: registry}
}

// Call moderates the message, then asks the selected provider for a concept.
// A flagged prompt is an unsuccessful response; provider errors are faults.
func (a *ProviderAgent) Call(ctx context.Context, message, agentID string) (*Response, error) {
	mod, err := a.registry.CheckPrompt(ctx, message)
	switch {
	case err != nil:
		// Moderation outages must not block generation.
		slog.Warn("prompt moderation unavailable", "error", err)
	case !mod.Safe:
		slog.Info("prompt rejected by moderation", "categories", mod.Categories)
		return Failure("Your request was flagged by content moderation (" +
			strings.Join(mod.Categories, ", ") + "). Please rephrase it."), nil
	}

	name := ""
	if agentID != "" && a.registry.HasProvider(agentID) {
		name = agentID
	}
	provider, err := a.registry.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	start := time.Now()
	text, err := provider.Generate(ctx, SystemPrompt, message)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", provider.Name(), err)
	}

	slog.Debug("agent reply received",
		"provider", provider.Name(),
		"duration", time.Since(start),
		"bytes", len(text),
	)
	return Success(text), nil
}

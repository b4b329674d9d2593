// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"graphicsstudio/internal/models"
)

// SavedKey is the durable slot holding the saved concepts collection.
const SavedKey = "graphics-studio-saved"

// SavedConcepts reads and writes the saved concepts collection as a single
// JSON array, most recent first.
type SavedConcepts struct {
	kv  KV
	key string
}

// NewSavedConcepts creates a collection store on top of kv using SavedKey.
func NewSavedConcepts(kv KV) *SavedConcepts {
	return &SavedConcepts{kv: kv, key: SavedKey}
}

// Load returns the persisted collection. An absent slot, a read failure or
// a corrupt document all yield an empty list; the latter two are logged.
func (s *SavedConcepts) Load(ctx context.Context) []models.SavedConcept {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return []models.SavedConcept{}
	}
	if err != nil {
		slog.Warn("saved concepts unavailable", "key", s.key, "error", err)
		return []models.SavedConcept{}
	}

	var list []models.SavedConcept
	if err := json.Unmarshal(raw, &list); err != nil {
		slog.Warn("saved concepts corrupt, starting empty", "key", s.key, "error", err)
		return []models.SavedConcept{}
	}
	if list == nil {
		list = []models.SavedConcept{}
	}
	return list
}

// Store replaces the persisted collection with list.
func (s *SavedConcepts) Store(ctx context.Context, list []models.SavedConcept) error {
	if list == nil {
		list = []models.SavedConcept{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode saved concepts: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist saved concepts: %w", err)
	}
	return nil
}

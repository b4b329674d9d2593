// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SavedConcept is a concept the user explicitly saved, together with the
// prompt that produced it. Entries are immutable once created.
type SavedConcept struct {
	ID        string         `json:"id"`
	Concept   GraphicConcept `json:"concept"`
	Timestamp string         `json:"timestamp"` // ISO-8601, UTC
	Query     string         `json:"query"`
}

// CreatedAt parses the stored timestamp. A malformed value yields the zero time.
func (s SavedConcept) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339Nano, s.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

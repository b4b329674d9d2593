// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package concept

import (
	"strings"

	"graphicsstudio/internal/models"
)

// Filter returns the saved concepts whose title or original query contains
// term, case-insensitively, preserving order. The input is never modified;
// an empty term returns a copy of the full list.
func Filter(saved []models.SavedConcept, term string) []models.SavedConcept {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.SavedConcept, 0, len(saved))
	for _, s := range saved {
		if term == "" ||
			strings.Contains(strings.ToLower(s.Concept.ConceptTitle), term) ||
			strings.Contains(strings.ToLower(s.Query), term) {
			out = append(out, s)
		}
	}
	return out
}

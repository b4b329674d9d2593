// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for the prompt form.
const (
	maxPromptLen      = 2_000
	maxAspectRatioLen = 16
	maxSearchLen      = 200
)

// validatePrompt checks the prompt form inputs and returns the first error
// found. An empty prompt is not an error: the studio ignores it.
func validatePrompt(prompt, aspectRatio string) string {
	if utf8.RuneCountInString(strings.TrimSpace(prompt)) > maxPromptLen {
		return "Prompt is too long (max 2,000 characters)."
	}
	if utf8.RuneCountInString(strings.TrimSpace(aspectRatio)) > maxAspectRatioLen {
		return "Aspect ratio is too long (max 16 characters)."
	}
	return ""
}

// searchTerm trims and caps a saved-list search query.
func searchTerm(q string) string {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > maxSearchLen {
		q = string([]rune(q)[:maxSearchLen])
	}
	return q
}

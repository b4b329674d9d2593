// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns concept titles into safe file names for exports.
package slug

import (
	"regexp"
	"strings"
)

// maxLen caps the slug part of a file name.
const maxLen = 60

// fallback names an export whose title has no usable characters.
const fallback = "graphic-concept"

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// separators collapses runs of whitespace and hyphens into one hyphen.
	separators = regexp.MustCompile(`[\s-]+`)
)

// Generate creates a lowercase, hyphenated slug from s.
// Example: "Neural Pathways: ML Made Simple" → "neural-pathways-ml-made-simple"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > maxLen {
		result = strings.TrimRight(result[:maxLen], "-")
	}
	return result
}

// Filename builds an export file name such as "summer-sale.txt". An empty
// slug falls back to a generic name.
func Filename(title, ext string) string {
	name := Generate(title)
	if name == "" {
		name = fallback
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

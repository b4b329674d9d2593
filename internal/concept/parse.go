// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package concept turns loosely structured agent output into graphic
// concepts and back into text. Parsing is best-effort and never fails
// loudly: callers receive (concept, true) or (zero, false).
package concept

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"graphicsstudio/internal/models"
)

// titleField is the discriminator: a decoded object is a concept only if it carries it.
const titleField = "concept_title"

// maxDepth bounds recursion through nested objects and double-encoded strings.
const maxDepth = 4

// Parse extracts a GraphicConcept from an agent payload. raw may be a string
// (prose, code fences and a JSON object in any mix), a byte slice, a decoded
// JSON object, or any value that marshals to one. The second return value
// reports whether a concept was found.
func Parse(raw any) (models.GraphicConcept, bool) {
	return parseValue(raw, 0)
}

func parseValue(raw any, depth int) (models.GraphicConcept, bool) {
	if depth > maxDepth {
		return models.GraphicConcept{}, false
	}

	switch v := raw.(type) {
	case nil:
		return models.GraphicConcept{}, false
	case string:
		return parseText(v, depth)
	case []byte:
		return parseText(string(v), depth)
	case json.RawMessage:
		return parseText(string(v), depth)
	case map[string]any:
		return parseObject(v, depth)
	case models.GraphicConcept:
		return v.Clone(), true
	case *models.GraphicConcept:
		if v == nil {
			return models.GraphicConcept{}, false
		}
		return v.Clone(), true
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return models.GraphicConcept{}, false
	}
	return parseText(string(b), depth)
}

// parseObject accepts an already-decoded object. If it carries the title
// field it is the concept; otherwise its values are searched for an
// embedded one, in key order so the result is deterministic.
func parseObject(m map[string]any, depth int) (models.GraphicConcept, bool) {
	if _, ok := m[titleField]; ok {
		b, err := json.Marshal(m)
		if err != nil {
			return models.GraphicConcept{}, false
		}
		return decode(gjson.ParseBytes(b)), true
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := m[k].(type) {
		case string, map[string]any:
			if c, ok := parseValue(v, depth+1); ok {
				return c, true
			}
		}
	}
	return models.GraphicConcept{}, false
}

// parseText scans a string for JSON objects and returns the first one that
// is, or contains, a concept.
func parseText(s string, depth int) (models.GraphicConcept, bool) {
	for _, candidate := range candidates(s) {
		res := gjson.Parse(candidate)
		if !res.IsObject() {
			continue
		}
		if res.Get(titleField).Exists() {
			return decode(res), true
		}
		if m, ok := res.Value().(map[string]any); ok {
			if c, ok := parseObject(m, depth+1); ok {
				return c, true
			}
		}
	}

	// The whole payload may be a JSON string literal wrapping the object.
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, `"`) && gjson.Valid(trimmed) {
		if res := gjson.Parse(trimmed); res.Type == gjson.String {
			return parseValue(res.String(), depth+1)
		}
	}
	return models.GraphicConcept{}, false
}

// decode maps a JSON object onto a GraphicConcept, coercing mismatched
// types instead of rejecting them.
func decode(res gjson.Result) models.GraphicConcept {
	return models.GraphicConcept{
		ConceptTitle:      str(res.Get("concept_title")),
		VisualDescription: str(res.Get("visual_description")),
		ColorPalette:      palette(res.Get("color_palette")),
		Typography: models.Typography{
			HeadlineFont: str(res.Get("typography.headline_font")),
			BodyFont:     str(res.Get("typography.body_font")),
			StyleNotes:   str(res.Get("typography.style_notes")),
		},
		Layout: models.Layout{
			Structure:  str(res.Get("layout.structure")),
			FocalPoint: str(res.Get("layout.focal_point")),
			VisualFlow: str(res.Get("layout.visual_flow")),
		},
		PlatformSpecs: models.PlatformSpecs{
			Platform:    str(res.Get("platform_specs.platform")),
			Dimensions:  str(res.Get("platform_specs.dimensions")),
			AspectRatio: str(res.Get("platform_specs.aspect_ratio")),
			FileFormat:  str(res.Get("platform_specs.file_format")),
			MaxFileSize: str(res.Get("platform_specs.max_file_size")),
		},
		CopySuggestions: models.CopySuggestions{
			Headline:     str(res.Get("copy_suggestions.headline")),
			Subheadline:  str(res.Get("copy_suggestions.subheadline")),
			BodyText:     str(res.Get("copy_suggestions.body_text")),
			CallToAction: str(res.Get("copy_suggestions.call_to_action")),
			Hashtags:     list(res.Get("copy_suggestions.hashtags"), true),
		},
		DesignTips: list(res.Get("design_tips"), false),
	}
}

// str renders any scalar as text. Arrays are joined; objects keep their raw JSON.
func str(r gjson.Result) string {
	switch {
	case !r.Exists(), r.Type == gjson.Null:
		return ""
	case r.IsArray():
		return strings.Join(list(r, false), ", ")
	case r.IsObject():
		return r.Raw
	}
	return strings.TrimSpace(r.String())
}

var listSeparators = regexp.MustCompile(`[\s,]+`)

// list reads an array of strings. A bare string becomes a single item, or is
// split on whitespace and commas when split is set (hashtags).
func list(r gjson.Result, split bool) []string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}

	var out []string
	if r.IsArray() {
		for _, item := range r.Array() {
			if s := str(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	s := str(r)
	if s == "" {
		return nil
	}
	if !split {
		return []string{s}
	}
	for _, part := range listSeparators.Split(s, -1) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var hexColor = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// palette reads the colour list. Entries may be objects, bare strings, or
// the whole palette may be a name→hex object.
func palette(r gjson.Result) []models.ColorSwatch {
	var out []models.ColorSwatch
	switch {
	case r.IsArray():
		for _, e := range r.Array() {
			switch {
			case e.IsObject():
				out = append(out, models.ColorSwatch{
					Name:  str(e.Get("name")),
					Hex:   normalizeHex(str(e.Get("hex"))),
					Usage: str(e.Get("usage")),
				})
			case e.Type == gjson.String:
				s := strings.TrimSpace(e.String())
				if hexColor.MatchString(s) {
					out = append(out, models.ColorSwatch{Hex: normalizeHex(s)})
				} else if s != "" {
					out = append(out, models.ColorSwatch{Name: s})
				}
			}
		}
	case r.IsObject():
		r.ForEach(func(key, value gjson.Result) bool {
			out = append(out, models.ColorSwatch{Name: key.String(), Hex: normalizeHex(str(value))})
			return true
		})
	}
	return out
}

// normalizeHex adds the missing '#' to bare hex codes and leaves anything else alone.
func normalizeHex(s string) string {
	if s != "" && !strings.HasPrefix(s, "#") && hexColor.MatchString(s) {
		return "#" + s
	}
	return s
}

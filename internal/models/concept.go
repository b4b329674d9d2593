// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared across Graphics Studio:
// graphic concepts returned by the agent, saved concepts, and the fixed
// table of supported social platforms.
package models

import "strings"

// ColorSwatch is one entry of a concept's colour palette.
type ColorSwatch struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Usage string `json:"usage"`
}

// Typography describes the font pairing for a concept.
type Typography struct {
	HeadlineFont string `json:"headline_font"`
	BodyFont     string `json:"body_font"`
	StyleNotes   string `json:"style_notes"`
}

// Layout describes the composition of a concept.
type Layout struct {
	Structure  string `json:"structure"`
	FocalPoint string `json:"focal_point"`
	VisualFlow string `json:"visual_flow"`
}

// PlatformSpecs holds the export requirements the agent recommends.
type PlatformSpecs struct {
	Platform    string `json:"platform"`
	Dimensions  string `json:"dimensions"`
	AspectRatio string `json:"aspect_ratio"`
	FileFormat  string `json:"file_format"`
	MaxFileSize string `json:"max_file_size"`
}

// CopySuggestions holds the text copy proposed for the graphic.
type CopySuggestions struct {
	Headline     string   `json:"headline"`
	Subheadline  string   `json:"subheadline"`
	BodyText     string   `json:"body_text"`
	CallToAction string   `json:"call_to_action"`
	Hashtags     []string `json:"hashtags"`
}

// GraphicConcept is the structured design brief returned by the agent for a
// single prompt. Every field is optional; zero values render as empty.
type GraphicConcept struct {
	ConceptTitle      string          `json:"concept_title"`
	VisualDescription string          `json:"visual_description"`
	ColorPalette      []ColorSwatch   `json:"color_palette"`
	Typography        Typography      `json:"typography"`
	Layout            Layout          `json:"layout"`
	PlatformSpecs     PlatformSpecs   `json:"platform_specs"`
	CopySuggestions   CopySuggestions `json:"copy_suggestions"`
	DesignTips        []string        `json:"design_tips"`
}

// Clone returns a deep copy so that snapshots held by saved entries never
// share slices with the concept currently on screen.
func (c GraphicConcept) Clone() GraphicConcept {
	out := c
	if c.ColorPalette != nil {
		out.ColorPalette = append([]ColorSwatch(nil), c.ColorPalette...)
	}
	if c.CopySuggestions.Hashtags != nil {
		out.CopySuggestions.Hashtags = append([]string(nil), c.CopySuggestions.Hashtags...)
	}
	if c.DesignTips != nil {
		out.DesignTips = append([]string(nil), c.DesignTips...)
	}
	return out
}

// Title returns the concept title, or a placeholder when the agent left it blank.
func (c GraphicConcept) Title() string {
	if t := strings.TrimSpace(c.ConceptTitle); t != "" {
		return t
	}
	return "Untitled concept"
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"
	"time"
)

// TestPlatformSpec verifies the canonical canvas table.
func TestPlatformSpec(t *testing.T) {
	tests := []struct {
		platform Platform
		dims     string
		ratio    string
	}{
		{PlatformLinkedIn, "1200x627", "1.91:1"},
		{PlatformTwitter, "1600x900", "16:9"},
		{PlatformInstagram, "1080x1080", "1:1"},
		{PlatformFacebook, "1200x630", "1.91:1"},
		{Platform("MySpace"), "1080x1080", "1:1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			s := tt.platform.Spec()
			if s.Dimensions() != tt.dims {
				t.Errorf("Dimensions() = %q, want %q", s.Dimensions(), tt.dims)
			}
			if s.Ratio != tt.ratio {
				t.Errorf("Ratio = %q, want %q", s.Ratio, tt.ratio)
			}
		})
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
		ok   bool
	}{
		{"Instagram", PlatformInstagram, true},
		{"  linkedin ", PlatformLinkedIn, true},
		{"X", PlatformTwitter, true},
		{"twitter", PlatformTwitter, true},
		{"Twitter/X", PlatformTwitter, true},
		{"FACEBOOK", PlatformFacebook, true},
		{"", DefaultPlatform, false},
		{"tiktok", DefaultPlatform, false},
	}
	for _, tt := range tests {
		got, ok := ParsePlatform(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePlatform(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// TestPlatformsReturnsCopy ensures callers cannot reorder the shared table.
func TestPlatformsReturnsCopy(t *testing.T) {
	p := Platforms()
	p[0] = PlatformSpec{}
	if Platforms()[0].Platform != PlatformLinkedIn {
		t.Error("mutating Platforms() result changed the package table")
	}
}

// TestCloneIsDeep verifies that slices are not shared between a concept and its clone.
func TestCloneIsDeep(t *testing.T) {
	c := GraphicConcept{
		ConceptTitle:    "Original",
		ColorPalette:    []ColorSwatch{{Name: "Navy", Hex: "#001f3f"}},
		CopySuggestions: CopySuggestions{Hashtags: []string{"#a"}},
		DesignTips:      []string{"tip"},
	}
	cp := c.Clone()
	cp.ColorPalette[0].Name = "Changed"
	cp.CopySuggestions.Hashtags[0] = "#b"
	cp.DesignTips[0] = "other"

	if c.ColorPalette[0].Name != "Navy" {
		t.Error("palette shared with clone")
	}
	if c.CopySuggestions.Hashtags[0] != "#a" {
		t.Error("hashtags shared with clone")
	}
	if c.DesignTips[0] != "tip" {
		t.Error("design tips shared with clone")
	}
}

func TestTitle(t *testing.T) {
	if got := (GraphicConcept{ConceptTitle: "  Bold  "}).Title(); got != "Bold" {
		t.Errorf("Title() = %q, want %q", got, "Bold")
	}
	if got := (GraphicConcept{}).Title(); got != "Untitled concept" {
		t.Errorf("Title() = %q, want placeholder", got)
	}
}

func TestSavedConceptCreatedAt(t *testing.T) {
	s := SavedConcept{Timestamp: "2026-03-01T10:00:00.5Z"}
	want := time.Date(2026, 3, 1, 10, 0, 0, 500_000_000, time.UTC)
	if !s.CreatedAt().Equal(want) {
		t.Errorf("CreatedAt() = %v, want %v", s.CreatedAt(), want)
	}
	if !(SavedConcept{Timestamp: "yesterday"}).CreatedAt().IsZero() {
		t.Error("malformed timestamp should yield zero time")
	}
}

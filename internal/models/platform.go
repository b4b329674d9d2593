// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
)

// Platform identifies a supported social network.
type Platform string

const (
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTwitter   Platform = "Twitter/X"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
)

// DefaultPlatform is used when no platform, or an unknown one, is selected.
const DefaultPlatform = PlatformInstagram

// PlatformSpec is the canonical canvas for a platform.
type PlatformSpec struct {
	Platform Platform
	Width    int
	Height   int
	Ratio    string
}

// Dimensions formats the canvas as "WxH".
func (s PlatformSpec) Dimensions() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// platformSpecs is ordered the way the platform picker lists them.
var platformSpecs = []PlatformSpec{
	{Platform: PlatformLinkedIn, Width: 1200, Height: 627, Ratio: "1.91:1"},
	{Platform: PlatformTwitter, Width: 1600, Height: 900, Ratio: "16:9"},
	{Platform: PlatformInstagram, Width: 1080, Height: 1080, Ratio: "1:1"},
	{Platform: PlatformFacebook, Width: 1200, Height: 630, Ratio: "1.91:1"},
}

// AspectRatios lists the overrides offered next to the platform picker.
var AspectRatios = []string{"1:1", "4:5", "16:9", "9:16", "1.91:1", "4:3", "2:3"}

// Platforms returns the supported platform specs in display order.
func Platforms() []PlatformSpec {
	return append([]PlatformSpec(nil), platformSpecs...)
}

// Spec returns the canonical canvas for p, falling back to the default
// platform when p is unknown.
func (p Platform) Spec() PlatformSpec {
	for _, s := range platformSpecs {
		if s.Platform == p {
			return s
		}
	}
	return DefaultPlatform.Spec()
}

// ParsePlatform resolves a user-supplied name, case-insensitively.
// "Twitter", "X" and "Twitter/X" all map to PlatformTwitter.
func ParsePlatform(name string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linkedin":
		return PlatformLinkedIn, true
	case "twitter", "x", "twitter/x":
		return PlatformTwitter, true
	case "instagram":
		return PlatformInstagram, true
	case "facebook":
		return PlatformFacebook, true
	}
	return DefaultPlatform, false
}

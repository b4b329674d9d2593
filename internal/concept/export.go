// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package concept

import (
	"fmt"
	"strings"

	"graphicsstudio/internal/models"
)

// ExportText renders a concept in the fixed, human-readable layout used by
// "copy all". The section order and labels are a stable format: other
// tools paste and diff these exports.
func ExportText(c models.GraphicConcept) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CONCEPT: %s\n\n", c.ConceptTitle)

	b.WriteString("VISUAL DESCRIPTION:\n")
	b.WriteString(c.VisualDescription)
	b.WriteString("\n\n")

	b.WriteString("COLOR PALETTE:\n")
	for _, sw := range c.ColorPalette {
		fmt.Fprintf(&b, "- %s (%s) - %s\n", sw.Name, sw.Hex, sw.Usage)
	}
	b.WriteString("\n")

	b.WriteString("TYPOGRAPHY:\n")
	fmt.Fprintf(&b, "Headline: %s\n", c.Typography.HeadlineFont)
	fmt.Fprintf(&b, "Body: %s\n", c.Typography.BodyFont)
	fmt.Fprintf(&b, "Notes: %s\n\n", c.Typography.StyleNotes)

	b.WriteString("LAYOUT:\n")
	fmt.Fprintf(&b, "Structure: %s\n", c.Layout.Structure)
	fmt.Fprintf(&b, "Focal Point: %s\n", c.Layout.FocalPoint)
	fmt.Fprintf(&b, "Visual Flow: %s\n\n", c.Layout.VisualFlow)

	ps := c.PlatformSpecs
	fmt.Fprintf(&b, "PLATFORM: %s | %s | %s | %s | Max %s\n\n",
		ps.Platform, ps.Dimensions, ps.AspectRatio, ps.FileFormat, ps.MaxFileSize)

	cs := c.CopySuggestions
	b.WriteString("COPY SUGGESTIONS:\n")
	fmt.Fprintf(&b, "Headline: %s\n", cs.Headline)
	fmt.Fprintf(&b, "Subheadline: %s\n", cs.Subheadline)
	fmt.Fprintf(&b, "Body: %s\n", cs.BodyText)
	fmt.Fprintf(&b, "Call to Action: %s\n", cs.CallToAction)
	fmt.Fprintf(&b, "Hashtags: %s\n\n", strings.Join(cs.Hashtags, " "))

	b.WriteString("DESIGN TIPS:\n")
	for i, tip := range c.DesignTips {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
	}

	return b.String()
}

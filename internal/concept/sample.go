// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package concept

import "graphicsstudio/internal/models"

// Sample mode shows a fixed concept without contacting the agent.
const (
	SamplePrompt   = "Design an Instagram carousel about machine learning basics"
	SamplePlatform = models.PlatformInstagram
)

// Sample returns a fresh copy of the demonstration concept.
func Sample() models.GraphicConcept {
	return models.GraphicConcept{
		ConceptTitle: "Neural Pathways: ML Made Simple",
		VisualDescription: "A clean, modern carousel with a deep navy background and glowing " +
			"**network nodes** that connect across slides. Each slide introduces one core idea " +
			"with a simple icon, a bold headline and a short explanation.",
		ColorPalette: []models.ColorSwatch{
			{Name: "Deep Navy", Hex: "#0B1D3A", Usage: "Background"},
			{Name: "Electric Cyan", Hex: "#00D4FF", Usage: "Nodes, highlights and connecting lines"},
			{Name: "Soft White", Hex: "#F5F7FA", Usage: "Headlines and body text"},
			{Name: "Signal Coral", Hex: "#FF6B6B", Usage: "Call-to-action accents"},
		},
		Typography: models.Typography{
			HeadlineFont: "Space Grotesk Bold",
			BodyFont:     "Inter Regular",
			StyleNotes:   "Large headlines (48-56px), generous line height, no more than 25 words per slide.",
		},
		Layout: models.Layout{
			Structure:  "Five-slide carousel: hook, three concept slides, summary with CTA",
			FocalPoint: "A glowing node cluster in the upper third of each slide",
			VisualFlow: "Connecting lines run off the right edge so each slide leads into the next",
		},
		PlatformSpecs: models.PlatformSpecs{
			Platform:    "Instagram",
			Dimensions:  "1080x1080",
			AspectRatio: "1:1",
			FileFormat:  "PNG",
			MaxFileSize: "30MB",
		},
		CopySuggestions: models.CopySuggestions{
			Headline:     "Machine Learning, Minus the Jargon",
			Subheadline:  "5 slides to understand how machines learn",
			BodyText:     "Swipe through the three ideas behind every ML model: data, patterns and predictions.",
			CallToAction: "Save this post for your next study session",
			Hashtags:     []string{"#MachineLearning", "#AI", "#DataScience", "#TechEducation"},
		},
		DesignTips: []string{
			"Keep one idea per slide so the carousel reads at a glance.",
			"Reuse the node motif as a visual thread between slides.",
			"Check contrast of cyan on navy for small text.",
		},
	}
}

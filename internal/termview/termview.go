// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package termview renders concepts and the saved collection for the
// terminal with lipgloss. Colour is dropped automatically when the output
// is not a terminal.
package termview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"graphicsstudio/internal/models"
)

var (
	accent = lipgloss.Color("#4F46E5")
	muted  = lipgloss.Color("#6B7280")
	danger = lipgloss.Color("#E53935")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Foreground(muted).Width(14)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Concept renders a full concept. sample marks the demonstration concept.
func Concept(c models.GraphicConcept, sample bool) string {
	var b strings.Builder

	title := titleStyle.Render(c.Title())
	if sample {
		title += " " + badgeStyle.Render("SAMPLE")
	}
	b.WriteString(boxStyle.Render(title))
	b.WriteString("\n")

	if c.VisualDescription != "" {
		section(&b, "Visual description")
		b.WriteString(wrap(c.VisualDescription))
		b.WriteString("\n")
	}

	if len(c.ColorPalette) > 0 {
		section(&b, "Colour palette")
		for _, sw := range c.ColorPalette {
			fmt.Fprintf(&b, "%s %-20s %-9s %s\n", swatch(sw.Hex), sw.Name, sw.Hex, mutedStyle.Render(sw.Usage))
		}
	}

	section(&b, "Typography")
	field(&b, "Headline", c.Typography.HeadlineFont)
	field(&b, "Body", c.Typography.BodyFont)
	field(&b, "Notes", c.Typography.StyleNotes)

	section(&b, "Layout")
	field(&b, "Structure", c.Layout.Structure)
	field(&b, "Focal point", c.Layout.FocalPoint)
	field(&b, "Visual flow", c.Layout.VisualFlow)

	ps := c.PlatformSpecs
	section(&b, "Platform")
	field(&b, "Platform", ps.Platform)
	field(&b, "Dimensions", ps.Dimensions)
	field(&b, "Aspect ratio", ps.AspectRatio)
	field(&b, "Format", ps.FileFormat)
	field(&b, "Max size", ps.MaxFileSize)

	cs := c.CopySuggestions
	section(&b, "Copy suggestions")
	field(&b, "Headline", cs.Headline)
	field(&b, "Subheadline", cs.Subheadline)
	field(&b, "Body", cs.BodyText)
	field(&b, "Call to action", cs.CallToAction)
	field(&b, "Hashtags", strings.Join(cs.Hashtags, " "))

	if len(c.DesignTips) > 0 {
		section(&b, "Design tips")
		for i, tip := range c.DesignTips {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
		}
	}

	return b.String()
}

// SavedList renders the saved collection as one line per entry, most
// recent first.
func SavedList(list []models.SavedConcept) string {
	if len(list) == 0 {
		return mutedStyle.Render("No saved concepts.") + "\n"
	}

	var b strings.Builder
	for _, e := range list {
		when := e.Timestamp
		if t := e.CreatedAt(); !t.IsZero() {
			when = t.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", mutedStyle.Render(e.ID), titleStyle.Render(e.Concept.Title()), mutedStyle.Render(when))
		if e.Query != "" {
			fmt.Fprintf(&b, "    %s\n", e.Query)
		}
	}
	return b.String()
}

// Error renders an error banner line.
func Error(msg string) string {
	return errorStyle.Render("✗ "+msg) + "\n"
}

// Notice renders a short status line.
func Notice(msg string) string {
	return mutedStyle.Render(msg) + "\n"
}

func section(b *strings.Builder, name string) {
	b.WriteString(headingStyle.Render(name))
	b.WriteString("\n")
}

// field writes a labelled line, skipping empty values.
func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

// swatch renders a colour chip, or blanks when hex is not a colour.
func swatch(hex string) string {
	if !hexColor.MatchString(hex) {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func wrap(s string) string {
	return lipgloss.NewStyle().Width(80).Render(s)
}

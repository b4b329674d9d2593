// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package termview

import (
	"strings"
	"testing"

	"graphicsstudio/internal/concept"
	"graphicsstudio/internal/models"
)

func TestConcept(t *testing.T) {
	out := Concept(concept.Sample(), true)

	for _, want := range []string{
		"Neural Pathways: ML Made Simple",
		"SAMPLE",
		"Colour palette",
		"#0B1D3A",
		"Deep Navy",
		"Space Grotesk Bold",
		"1. ",
		"Design tips",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestConceptSkipsEmptyFields(t *testing.T) {
	out := Concept(models.GraphicConcept{ConceptTitle: "Bare"}, false)

	if strings.Contains(out, "SAMPLE") {
		t.Error("sample badge on a real concept")
	}
	for _, absent := range []string{"Colour palette", "Design tips", "Visual description", "Hashtags"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty section %q rendered", absent)
		}
	}
}

func TestConceptUntitled(t *testing.T) {
	if out := Concept(models.GraphicConcept{}, false); !strings.Contains(out, "Untitled concept") {
		t.Error("placeholder title missing")
	}
}

func TestSavedList(t *testing.T) {
	if out := SavedList(nil); !strings.Contains(out, "No saved concepts.") {
		t.Errorf("empty list = %q", out)
	}

	out := SavedList([]models.SavedConcept{
		{ID: "2", Concept: models.GraphicConcept{ConceptTitle: "Second"}, Timestamp: "2026-03-01T12:00:01Z", Query: "q2"},
		{ID: "1", Concept: models.GraphicConcept{ConceptTitle: "First"}, Timestamp: "bad"},
	})
	if strings.Index(out, "Second") > strings.Index(out, "First") {
		t.Error("order not preserved")
	}
	for _, want := range []string{"q2", "bad"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q", want)
		}
	}
}

func TestSwatch(t *testing.T) {
	if got := swatch("not-a-colour"); got != "  " {
		t.Errorf("swatch(invalid) = %q", got)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package studio

import (
	"slices"

	"graphicsstudio/internal/models"
)

// Phase is the observable state of the studio.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseDisplaying Phase = "displaying"
	PhaseError      Phase = "error"
)

// State is a point-in-time copy of the studio for rendering. Mutating it
// has no effect on the studio.
type State struct {
	Prompt      string
	Platform    models.Platform
	AspectRatio string
	Concept     *models.GraphicConcept
	Query       string
	Loading     bool
	Error       string
	SampleMode  bool
	IsSample    bool
	Saved       []models.SavedConcept
}

// Phase derives the state machine phase. Loading wins over an error left
// from a previous request, and an error wins over a displayed concept.
func (st State) Phase() Phase {
	switch {
	case st.Loading:
		return PhaseLoading
	case st.Error != "":
		return PhaseError
	case st.Concept != nil:
		return PhaseDisplaying
	default:
		return PhaseIdle
	}
}

// Snapshot copies the current state. It never blocks on an agent request.
func (s *Studio) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Prompt:      s.prompt,
		Platform:    s.platform,
		AspectRatio: s.aspectRatio,
		Query:       s.query,
		Loading:     s.loading,
		Error:       s.errMsg,
		SampleMode:  s.sampleMode,
		IsSample:    s.isSample,
		Saved:       slices.Clone(s.collection),
	}
	if st.Saved == nil {
		st.Saved = []models.SavedConcept{}
	}
	if s.current != nil {
		c := s.current.Clone()
		st.Concept = &c
	}
	return st
}

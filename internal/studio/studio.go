// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package studio holds the Graphics Studio session: the prompt form, the
// concept on display, the saved collection and the loading/error state.
// One Studio is owned per process and shared by the web and CLI surfaces.
//
// Only one agent request runs at a time. The in-flight flag is checked and
// set under the mutex before dispatch and cleared in a deferred block, so
// every path (success, failure, fault, panic) releases it.
package studio

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"graphicsstudio/internal/agent"
	"graphicsstudio/internal/concept"
	"graphicsstudio/internal/models"
	"graphicsstudio/internal/store"
)

// User-facing error messages.
const (
	ErrMsgParse  = "The agent response could not be parsed into a graphic concept. Please try again."
	ErrMsgFailed = "Failed to generate a concept. Please try again."
	ErrMsgFault  = "Something went wrong while contacting the agent. Please try again."
)

// Studio is the session state machine. All methods are safe for
// concurrent use.
type Studio struct {
	agent   agent.Agent
	saved   *store.SavedConcepts
	agentID string
	now     func() time.Time

	// persistMu serialises collection writes so they land in mutation order.
	persistMu sync.Mutex

	mu          sync.Mutex
	prompt      string
	platform    models.Platform
	aspectRatio string
	current     *models.GraphicConcept
	query       string
	loading     bool
	errMsg      string
	sampleMode  bool
	isSample    bool
	collection  []models.SavedConcept
}

// New creates a studio and reads the saved collection once.
func New(ctx context.Context, a agent.Agent, saved *store.SavedConcepts, agentID string) *Studio {
	s := &Studio{
		agent:      a,
		saved:      saved,
		agentID:    agentID,
		now:        time.Now,
		platform:   models.DefaultPlatform,
		collection: saved.Load(ctx),
	}
	slog.Debug("studio ready", "saved", len(s.collection), "agent_id", agentID)
	return s
}

// Generate asks the agent for a concept. It returns false without doing
// anything when the trimmed prompt is empty or a request is already in
// flight. On failure the error state is set and the displayed concept kept.
func (s *Studio) Generate(ctx context.Context, prompt string, platform models.Platform, aspectRatio string) bool {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return false
	}
	aspectRatio = strings.TrimSpace(aspectRatio)

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return false
	}
	s.loading = true
	s.errMsg = ""
	s.prompt = prompt
	s.platform = platform
	s.aspectRatio = aspectRatio
	s.mu.Unlock()
	defer s.finish()

	c, errMsg := s.dispatch(ctx, concept.BuildMessage(prompt, platform, aspectRatio))

	s.mu.Lock()
	defer s.mu.Unlock()
	if errMsg != "" {
		s.errMsg = errMsg
		return true
	}
	s.current = &c
	s.query = prompt
	s.isSample = false
	return true
}

// RequestVariation asks for a fresh take on the current query. The query
// itself never changes, so repeated variations all derive from the
// original prompt. Returns false when there is no query or a request is in
// flight.
func (s *Studio) RequestVariation(ctx context.Context) bool {
	s.mu.Lock()
	if s.query == "" || s.loading {
		s.mu.Unlock()
		return false
	}
	s.loading = true
	s.errMsg = ""
	query := s.query
	s.mu.Unlock()
	defer s.finish()

	c, errMsg := s.dispatch(ctx, concept.VariationMessage(query))

	s.mu.Lock()
	defer s.mu.Unlock()
	if errMsg != "" {
		s.errMsg = errMsg
		return true
	}
	s.current = &c
	s.isSample = false
	return true
}

func (s *Studio) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// dispatch calls the agent and parses its reply. It returns the concept, or
// the user-facing error message when the request did not produce one. The
// call is detached from ctx cancellation so a started request completes.
func (s *Studio) dispatch(ctx context.Context, message string) (c models.GraphicConcept, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("agent call panicked", "panic", fmt.Sprint(r))
			c, errMsg = models.GraphicConcept{}, ErrMsgFault
		}
	}()

	start := time.Now()
	resp, err := s.agent.Call(context.WithoutCancel(ctx), message, s.agentID)
	if err != nil {
		slog.Error("agent call failed", "error", err, "duration", time.Since(start))
		return models.GraphicConcept{}, ErrMsgFault
	}

	if resp == nil || !resp.Success || resp.Response == nil || resp.Response.Status != agent.StatusSuccess {
		msg := failureMessage(resp)
		slog.Warn("agent reported failure", "message", msg, "duration", time.Since(start))
		return models.GraphicConcept{}, msg
	}

	parsed, ok := concept.Parse(resp.Response.Result)
	if !ok {
		slog.Warn("agent reply not a graphic concept", "duration", time.Since(start))
		return models.GraphicConcept{}, ErrMsgParse
	}

	slog.Info("concept generated", "title", parsed.Title(), "duration", time.Since(start))
	return parsed, ""
}

// failureMessage picks the agent's own explanation when it gave one.
func failureMessage(resp *agent.Response) string {
	if resp == nil {
		return ErrMsgFailed
	}
	if msg := strings.TrimSpace(resp.Error); msg != "" {
		return msg
	}
	if resp.Response != nil {
		if msg := strings.TrimSpace(resp.Response.Message); msg != "" {
			return msg
		}
	}
	return ErrMsgFailed
}

// Save prepends a snapshot of the displayed concept to the collection and
// persists it. Returns false when nothing is displayed. A storage failure
// is logged; the entry stays in the in-memory collection.
func (s *Studio) Save(ctx context.Context) (models.SavedConcept, bool) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return models.SavedConcept{}, false
	}
	now := s.now()
	entry := models.SavedConcept{
		ID:        s.nextID(now),
		Concept:   s.current.Clone(),
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Query:     s.query,
	}
	s.collection = append([]models.SavedConcept{entry}, s.collection...)
	list := slices.Clone(s.collection)
	s.mu.Unlock()

	s.persist(ctx, list)
	slog.Info("concept saved", "id", entry.ID, "title", entry.Concept.Title())
	return entry, true
}

// nextID derives an id from the creation time in milliseconds, bumping it
// until it is unused. Must be called with s.mu held.
func (s *Studio) nextID(now time.Time) string {
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if s.indexOf(id) == -1 {
			return id
		}
		n++
	}
}

// indexOf returns the position of id in the collection, or -1.
// Must be called with s.mu held.
func (s *Studio) indexOf(id string) int {
	return slices.IndexFunc(s.collection, func(e models.SavedConcept) bool { return e.ID == id })
}

// LoadSaved displays a saved concept and makes its query current, so a
// variation continues from it. The entry stays in the collection.
func (s *Studio) LoadSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	entry := s.collection[i]
	c := entry.Concept.Clone()
	s.current = &c
	s.query = entry.Query
	s.prompt = entry.Query
	s.errMsg = ""
	s.isSample = false
	return true
}

// DeleteSaved removes the entry with id and persists the collection. An
// unknown id is a no-op: nothing is written.
func (s *Studio) DeleteSaved(ctx context.Context, id string) bool {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(id)
	if i == -1 {
		s.mu.Unlock()
		return false
	}
	s.collection = slices.Delete(slices.Clone(s.collection), i, i+1)
	list := slices.Clone(s.collection)
	s.mu.Unlock()

	s.persist(ctx, list)
	slog.Info("saved concept deleted", "id", id)
	return true
}

func (s *Studio) persist(ctx context.Context, list []models.SavedConcept) {
	if err := s.saved.Store(ctx, list); err != nil {
		slog.Error("failed to persist saved concepts", "error", err, "count", len(list))
	}
}

// DismissError clears the error banner.
func (s *Studio) DismissError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// SetSampleMode toggles sample mode. Enabling it with nothing on display
// installs the sample concept, prompt and platform. Disabling it clears
// the display only while the sample is what is shown; a generated or
// loaded concept is never touched.
func (s *Studio) SetSampleMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sampleMode = enabled
	if enabled {
		if s.current == nil {
			c := concept.Sample()
			s.current = &c
			s.prompt = concept.SamplePrompt
			s.platform = concept.SamplePlatform
			s.aspectRatio = ""
			s.isSample = true
		}
		return
	}
	if s.isSample {
		s.current = nil
		s.prompt = ""
		s.query = ""
		s.platform = models.DefaultPlatform
		s.isSample = false
	}
}

// SetPrompt updates the prompt field without dispatching.
func (s *Studio) SetPrompt(prompt string) {
	s.mu.Lock()
	s.prompt = prompt
	s.mu.Unlock()
}

// SetPlatform updates the platform selection without dispatching.
func (s *Studio) SetPlatform(p models.Platform) {
	s.mu.Lock()
	s.platform = p
	s.mu.Unlock()
}

// SetAspectRatio updates the aspect ratio override; empty clears it.
func (s *Studio) SetAspectRatio(ratio string) {
	s.mu.Lock()
	s.aspectRatio = strings.TrimSpace(ratio)
	s.mu.Unlock()
}

// Search returns saved concepts whose title or query contains term,
// case-insensitively, most recent first. The collection is not modified.
func (s *Studio) Search(term string) []models.SavedConcept {
	s.mu.Lock()
	defer s.mu.Unlock()
	return concept.Filter(s.collection, term)
}

// Saved returns the saved entry with id.
func (s *Studio) Saved(id string) (models.SavedConcept, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.SavedConcept{}, false
	}
	entry := s.collection[i]
	entry.Concept = entry.Concept.Clone()
	return entry, true
}

// Export renders the displayed concept in the plain-text export format.
func (s *Studio) Export() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", false
	}
	return concept.ExportText(*s.current), true
}

// ExportSaved renders a saved concept in the plain-text export format.
func (s *Studio) ExportSaved(id string) (string, bool) {
	entry, ok := s.Saved(id)
	if !ok {
		return "", false
	}
	return concept.ExportText(entry.Concept), true
}

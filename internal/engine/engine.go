// Package engine implements the turn controller, the directive resolver and
// the red-phone crisis resolver. It is strictly single-threaded: one directive
// is resolved fully, including all state mutation and clamping, before the
// next is accepted.
package engine

import (
	"github.com/kmazurek/coldfront/internal/docs"
	"github.com/kmazurek/coldfront/internal/models"
	"github.com/kmazurek/coldfront/internal/rng"
)

// ContentMarker prefixes a feedback line carrying a decrypted document body.
// The presentation layer uses it to pick a different rendering treatment; the
// engine never interprets it.
const ContentMarker = "CONTENT: "

// Result is the resolver's structured feedback: ordered human-readable lines
// plus whether the directive consumed the turn.
type Result struct {
	Lines     []string
	TurnEnded bool
}

// Engine owns the world state, the pending document batch and the per-turn
// counters for one game.
type Engine struct {
	State            *models.WorldState
	TurnCount        int
	PendingDocuments []*models.Document

	IntelPoints        int
	MaxIntelPoints     int
	InterruptionActive bool

	consultCount     int
	traceCount       int
	interrogateCount int
	traced           map[string]bool
	interrogated     map[string]bool

	rng *rng.Source
	gen docs.Generator
}

// New creates an engine around an injected random stream and document
// generator. The stream is the single source of randomness for the whole run.
func New(r *rng.Source, gen docs.Generator) *Engine {
	return &Engine{
		State:          models.NewWorldState(r),
		IntelPoints:    1,
		MaxIntelPoints: 1,
		traced:         make(map[string]bool),
		interrogated:   make(map[string]bool),
		rng:            r,
		gen:            gen,
	}
}

// StartTurn advances the turn counter, resets every per-turn budget and
// replaces the pending document batch. The prior batch is discarded
// unconditionally.
func (e *Engine) StartTurn() {
	e.TurnCount++
	e.InterruptionActive = false
	e.consultCount = 0
	e.traceCount = 0
	e.interrogateCount = 0
	e.traced = make(map[string]bool)
	e.interrogated = make(map[string]bool)

	// Interruption odds scale with the turn index.
	var interruptionChance float64
	switch {
	case e.TurnCount <= 2:
		interruptionChance = 0.0
	case e.TurnCount <= 5:
		interruptionChance = 0.15
	case e.TurnCount <= 10:
		interruptionChance = 0.30
	default:
		interruptionChance = 0.50
	}
	if e.rng.Bool(interruptionChance) {
		e.InterruptionActive = true
	}

	docCount := 3
	switch {
	case e.TurnCount >= 7:
		docCount = 5
	case e.TurnCount >= 4:
		docCount = 4
	}

	e.MaxIntelPoints = 1
	switch {
	case e.TurnCount >= 6:
		e.MaxIntelPoints = 3
	case e.TurnCount >= 3:
		e.MaxIntelPoints = 2
	}
	e.IntelPoints = e.MaxIntelPoints

	batch := e.gen.Batch(e.State, docCount, e.TurnCount, e.rng)

	// Guarantee at least one encrypted document per non-empty batch.
	hasEncrypted := false
	for _, d := range batch {
		if d.IsEncrypted {
			hasEncrypted = true
			break
		}
	}
	if !hasEncrypted && len(batch) > 0 {
		batch[0].IsEncrypted = true
	}

	e.PendingDocuments = batch
}

// findDocument returns the pending document with the given id, or nil.
func (e *Engine) findDocument(id string) *models.Document {
	for _, d := range e.PendingDocuments {
		if d.ID == id {
			return d
		}
	}
	return nil
}

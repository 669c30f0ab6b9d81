// Package voicestate defines the provider-agnostic emotive voice state
// and the mapper that normalizes raw emotion sources into it.
package voicestate

import (
	"time"

	"github.com/easeaico/emotive-voice/internal/emotion"
)

// Feeling is a coarse background-feeling label derived from body state.
type Feeling string

const (
	FeelingEnergized  Feeling = "energized"
	FeelingFatigued   Feeling = "fatigued"
	FeelingTense      Feeling = "tense"
	FeelingRelaxed    Feeling = "relaxed"
	FeelingWarm       Feeling = "warm"
	FeelingCold       Feeling = "cold"
	FeelingAroused    Feeling = "aroused"
	FeelingCalm       Feeling = "calm"
	FeelingBreathless Feeling = "breathless"
	FeelingSteady     Feeling = "steady"
	FeelingNeutral    Feeling = "neutral"
)

var knownFeelings = map[Feeling]bool{
	FeelingEnergized: true, FeelingFatigued: true, FeelingTense: true,
	FeelingRelaxed: true, FeelingWarm: true, FeelingCold: true,
	FeelingAroused: true, FeelingCalm: true, FeelingBreathless: true,
	FeelingSteady: true, FeelingNeutral: true,
}

// KnownFeeling reports whether the label belongs to the fixed feeling set.
func KnownFeeling(f Feeling) bool {
	return knownFeelings[f]
}

// State is the canonical emotive voice state. It is an immutable value
// produced fresh on each mapping; adapters never mutate it. A nil Body
// means "unknown": adapters skip body-derived modifiers entirely.
type State struct {
	Primary   emotion.Primary    `json:"primary_emotion"`
	Intensity float64            `json:"intensity"`
	Nuance    string             `json:"nuanced_emotion,omitempty"`
	Body      *emotion.BodyState `json:"body_state,omitempty"`
	Feelings  []Feeling          `json:"background_feelings,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// HasFeeling reports whether the state carries the given background label.
func (s State) HasFeeling(f Feeling) bool {
	for _, have := range s.Feelings {
		if have == f {
			return true
		}
	}
	return false
}

// Source is a raw emotion reading from any upstream producer: the text
// analyzer, the state store, or an external emotion-source adapter.
type Source struct {
	Emotions []emotion.Result   `json:"emotions"`
	Body     *emotion.BodyState `json:"body_state,omitempty"`
	Feelings []string           `json:"background_feelings,omitempty"`
}

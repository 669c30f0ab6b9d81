// Package profile manages voice profiles: the named voices available per
// TTS provider, with a style embedding for description-based lookup.
package profile

import (
	"context"
	"time"
)

// Profile describes one selectable voice.
type Profile struct {
	ID          int       `json:"id"`
	Speaker     string    `json:"speaker"`
	Provider    string    `json:"provider"`
	VoiceID     string    `json:"voice_id"`
	Description string    `json:"description"`
	Emotive     bool      `json:"emotive"`
	StyleVector []float32 `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Match is a profile scored by style similarity.
type Match struct {
	Profile
	Similarity float64 `json:"similarity"`
}

// Repo accesses voice profile data.
type Repo interface {
	AddProfile(ctx context.Context, p Profile) error
	GetBySpeaker(ctx context.Context, provider, speaker string) (*Profile, error)
	ListByProvider(ctx context.Context, provider string) ([]Profile, error)
	SearchByStyle(ctx context.Context, provider string, embedding []float32, topK int, threshold float64) ([]Match, error)
}

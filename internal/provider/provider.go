// Package provider maps the canonical emotive voice state onto
// vendor-specific synthesis parameters, inline tags, and config blobs.
package provider

import (
	"errors"
	"fmt"

	"github.com/easeaico/emotive-voice/internal/voicestate"
)

// ErrUnknownProvider marks a provider name outside the recognized set.
var ErrUnknownProvider = errors.New("unknown provider")

// Modifiers are prosody adjustments derived from the body state. A zero
// field means the adapter computed no adjustment for it.
type Modifiers struct {
	Speed  float64 `json:"speed,omitempty"`
	Volume float64 `json:"volume,omitempty"`
	Pitch  float64 `json:"pitch,omitempty"`
}

// Params is the adapter output contract. Raw is an escape hatch for
// vendor-specific fields callers forward verbatim.
type Params struct {
	Provider  string         `json:"provider"`
	Emotion   string         `json:"emotion,omitempty"`
	Emotions  []string       `json:"emotions,omitempty"`
	Modifiers *Modifiers     `json:"modifiers,omitempty"`
	SSMLTags  []string       `json:"ssml_tags,omitempty"`
	Raw       map[string]any `json:"raw,omitempty"`
}

// Adapter renders emotive voice state for one TTS vendor. Adapters never
// mutate the input state; every method is a pure computation.
type Adapter interface {
	Name() string
	SupportsEmotions() bool
	SupportsSSML() bool

	// MapEmotion converts the state into vendor emotion parameters.
	MapEmotion(state voicestate.State) Params
	// ApplyToText renders the state's inline markup into text.
	ApplyToText(text string, state voicestate.State) string
	// GenerateConfig builds the opaque vendor config blob.
	GenerateConfig(state voicestate.State) map[string]any

	// SupportedEmotions lists the vendor's emotion vocabulary.
	SupportedEmotions() []string
	// EmotiveVoices lists vendor voice ids known to honor emotion input.
	EmotiveVoices() []string
}

// emotionlessProviders are recognized vendors with no emotion support.
// They get the passthrough adapter rather than an error.
var emotionlessProviders = map[string]bool{
	"openai": true,
	"google": true,
	"edge":   true,
	"piper":  true,
	"kokoro": true,
}

// New selects the adapter for a provider name. Recognized vendors without
// emotion support fall back to passthrough; an unrecognized name is a
// configuration error.
func New(name string) (Adapter, error) {
	switch name {
	case "cartesia":
		return NewCartesia(), nil
	case "maya":
		return NewMaya(), nil
	case "elevenlabs":
		return NewElevenLabs(), nil
	case "passthrough":
		return NewPassthrough(name), nil
	default:
		if emotionlessProviders[name] {
			return NewPassthrough(name), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

// Names lists every provider name New accepts.
func Names() []string {
	return []string{
		"cartesia", "maya", "elevenlabs", "passthrough",
		"edge", "google", "kokoro", "openai", "piper",
	}
}

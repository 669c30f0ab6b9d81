package provider

import (
	"github.com/easeaico/emotive-voice/internal/emotion"
	"github.com/easeaico/emotive-voice/internal/markup"
	"github.com/easeaico/emotive-voice/internal/voicestate"
)

// mayaTagFloor is the minimum intensity before any inline tag renders.
const mayaTagFloor = 0.3

// mayaTags is the vendor's discrete inline tag vocabulary.
var mayaTags = []string{"laugh", "giggle", "sigh", "gasp", "cry", "whisper", "angry", "groan"}

// mayaDefaultTones fall back when no body-state override fires.
var mayaDefaultTones = map[emotion.Primary]string{
	emotion.Joy:      "warm",
	emotion.Sadness:  "gentle",
	emotion.Anger:    "concerned",
	emotion.Fear:     "concerned",
	emotion.Disgust:  "neutral",
	emotion.Surprise: "neutral",
	emotion.Neutral:  "neutral",
}

// mayaVoiceDescriptions turn a tone into the textual voice description the
// vendor consumes alongside the transcript.
var mayaVoiceDescriptions = map[string]string{
	"neutral":   "A clear, even voice with natural pacing.",
	"gentle":    "A soft, unhurried voice that stays low and close.",
	"concerned": "A careful, attentive voice with a slight edge of urgency.",
	"warm":      "A warm, open voice with a smile behind it.",
}

var mayaEmotiveVoiceIDs = []string{
	"maya-aurora", "maya-ember", "maya-willow", "maya-sol",
}

// Maya maps emotive state onto Maya's discrete inline tags and a
// tone-based voice description.
type Maya struct{}

// NewMaya returns the Maya adapter.
func NewMaya() *Maya {
	return &Maya{}
}

func (m *Maya) Name() string           { return "maya" }
func (m *Maya) SupportsEmotions() bool { return true }
func (m *Maya) SupportsSSML() bool     { return true }

// SupportedEmotions returns the inline tag vocabulary.
func (m *Maya) SupportedEmotions() []string {
	out := make([]string, len(mayaTags))
	copy(out, mayaTags)
	return out
}

// EmotiveVoices lists Maya voices that honor tag input.
func (m *Maya) EmotiveVoices() []string {
	out := make([]string, len(mayaEmotiveVoiceIDs))
	copy(out, mayaEmotiveVoiceIDs)
	return out
}

// SelectTags picks tag placements for a state. Most tags need intensity
// 0.4; low-band anger still gets an inline groan.
func (m *Maya) SelectTags(state voicestate.State) []markup.Placement {
	i := state.Intensity
	if i < mayaTagFloor {
		return nil
	}

	switch state.Primary {
	case emotion.Joy:
		if i < 0.4 {
			return nil
		}
		if i > 0.7 {
			return []markup.Placement{{Tag: "laugh", Position: markup.PositionStart}}
		}
		return []markup.Placement{{Tag: "giggle", Position: markup.PositionStart}}
	case emotion.Sadness:
		if i < 0.4 {
			return nil
		}
		if i > 0.8 {
			return []markup.Placement{{Tag: "cry", Position: markup.PositionStart}}
		}
		return []markup.Placement{{Tag: "sigh", Position: markup.PositionStart}}
	case emotion.Anger:
		switch {
		case i > 0.7:
			return []markup.Placement{{Tag: "angry", Position: markup.PositionStart}}
		case i >= 0.4:
			return []markup.Placement{{Tag: "sigh", Position: markup.PositionStart}}
		default:
			return []markup.Placement{{Tag: "groan", Position: markup.PositionInline}}
		}
	case emotion.Fear:
		if i < 0.4 {
			return nil
		}
		placements := []markup.Placement{{Tag: "gasp", Position: markup.PositionStart}}
		if i > 0.8 {
			placements = append(placements, markup.Placement{Tag: "whisper", Position: markup.PositionEnd})
		}
		return placements
	case emotion.Disgust:
		if i < 0.4 {
			return nil
		}
		return []markup.Placement{{Tag: "groan", Position: markup.PositionStart}}
	case emotion.Surprise:
		if i < 0.4 {
			return nil
		}
		return []markup.Placement{{Tag: "gasp", Position: markup.PositionStart}}
	default:
		return nil
	}
}

// Tone derives the speaking tone. Body-state overrides win over the
// primary emotion's default.
func (m *Maya) Tone(state voicestate.State) string {
	if state.Body != nil {
		switch {
		case state.Body.Temperature > 0.3:
			return "warm"
		case state.Body.Tension > 0.6:
			return "concerned"
		case state.Body.Energy < 0.3:
			return "gentle"
		}
	}
	if tone, ok := mayaDefaultTones[state.Primary]; ok {
		return tone
	}
	return "neutral"
}

// VoiceDescription renders the tone into the vendor's voice description.
func (m *Maya) VoiceDescription(state voicestate.State) string {
	if desc, ok := mayaVoiceDescriptions[m.Tone(state)]; ok {
		return desc
	}
	return mayaVoiceDescriptions["neutral"]
}

// MapEmotion converts the state into Maya tag parameters.
func (m *Maya) MapEmotion(state voicestate.State) Params {
	placements := m.SelectTags(state)
	tags := make([]string, 0, len(placements))
	for _, p := range placements {
		tags = append(tags, "<"+p.Tag+">")
	}
	return Params{
		Provider: m.Name(),
		Emotion:  string(state.Primary),
		SSMLTags: tags,
		Raw: map[string]any{
			"tone": m.Tone(state),
		},
	}
}

// ApplyToText renders the selected tag placements into the text.
func (m *Maya) ApplyToText(text string, state voicestate.State) string {
	return markup.Inject(text, m.SelectTags(state))
}

// GenerateConfig builds the voice_description blob.
func (m *Maya) GenerateConfig(state voicestate.State) map[string]any {
	return map[string]any{
		"voice_description": m.VoiceDescription(state),
		"tone":              m.Tone(state),
	}
}

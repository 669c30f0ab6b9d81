package provider

import (
	"github.com/easeaico/emotive-voice/internal/emotion"
	"github.com/easeaico/emotive-voice/internal/voicestate"
)

// VoiceSettings is the ElevenLabs four-parameter voice settings record.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// elevenNeutral is the resting preset every emotion interpolates from.
var elevenNeutral = VoiceSettings{Stability: 0.5, SimilarityBoost: 0.75, Style: 0}

// elevenPresets are the full-intensity settings per primary emotion.
var elevenPresets = map[emotion.Primary]VoiceSettings{
	emotion.Joy:      {Stability: 0.3, SimilarityBoost: 0.75, Style: 0.65},
	emotion.Sadness:  {Stability: 0.65, SimilarityBoost: 0.8, Style: 0.45},
	emotion.Anger:    {Stability: 0.25, SimilarityBoost: 0.7, Style: 0.8},
	emotion.Fear:     {Stability: 0.3, SimilarityBoost: 0.75, Style: 0.7},
	emotion.Disgust:  {Stability: 0.4, SimilarityBoost: 0.7, Style: 0.6},
	emotion.Surprise: {Stability: 0.25, SimilarityBoost: 0.7, Style: 0.75},
	emotion.Neutral:  elevenNeutral,
}

var elevenEmotiveVoiceIDs = []string{
	"21m00Tcm4TlvDq8ikWAM", // Rachel
	"EXAVITQu4vr4xnSDxMaL", // Bella
	"ErXwobaYiN019PkySvjV", // Antoni
	"TxGEqnHWrfWFTfGW9XjX", // Josh
}

// ElevenLabs maps emotive state onto voice settings. The vendor has no
// text-level emotion markup, so text passes through untouched.
type ElevenLabs struct{}

// NewElevenLabs returns the ElevenLabs adapter.
func NewElevenLabs() *ElevenLabs {
	return &ElevenLabs{}
}

func (e *ElevenLabs) Name() string           { return "elevenlabs" }
func (e *ElevenLabs) SupportsEmotions() bool { return true }
func (e *ElevenLabs) SupportsSSML() bool     { return false }

// SupportedEmotions lists the primaries with a preset.
func (e *ElevenLabs) SupportedEmotions() []string {
	out := make([]string, 0, len(emotion.Primaries))
	for _, p := range emotion.Primaries {
		out = append(out, string(p))
	}
	return out
}

// EmotiveVoices lists voice ids that respond well to style settings.
func (e *ElevenLabs) EmotiveVoices() []string {
	out := make([]string, len(elevenEmotiveVoiceIDs))
	copy(out, elevenEmotiveVoiceIDs)
	return out
}

// Settings interpolates between the neutral preset and the emotion's
// preset, using intensity as the blend factor. Speaker boost only kicks
// in above intensity 0.5.
func (e *ElevenLabs) Settings(state voicestate.State) VoiceSettings {
	preset, ok := elevenPresets[state.Primary]
	if !ok {
		preset = elevenNeutral
	}
	f := emotion.ClampIntensity(state.Intensity)
	return VoiceSettings{
		Stability:       elevenNeutral.Stability + (preset.Stability-elevenNeutral.Stability)*f,
		SimilarityBoost: elevenNeutral.SimilarityBoost + (preset.SimilarityBoost-elevenNeutral.SimilarityBoost)*f,
		Style:           elevenNeutral.Style + (preset.Style-elevenNeutral.Style)*f,
		UseSpeakerBoost: f > 0.5,
	}
}

// MapEmotion converts the state into voice-settings parameters.
func (e *ElevenLabs) MapEmotion(state voicestate.State) Params {
	settings := e.Settings(state)
	return Params{
		Provider: e.Name(),
		Emotion:  string(state.Primary),
		Raw: map[string]any{
			"stability":         settings.Stability,
			"similarity_boost":  settings.SimilarityBoost,
			"style":             settings.Style,
			"use_speaker_boost": settings.UseSpeakerBoost,
		},
	}
}

// ApplyToText passes the text through unmodified.
func (e *ElevenLabs) ApplyToText(text string, _ voicestate.State) string {
	return text
}

// GenerateConfig builds the voice_settings blob.
func (e *ElevenLabs) GenerateConfig(state voicestate.State) map[string]any {
	settings := e.Settings(state)
	return map[string]any{
		"voice_settings": map[string]any{
			"stability":         settings.Stability,
			"similarity_boost":  settings.SimilarityBoost,
			"style":             settings.Style,
			"use_speaker_boost": settings.UseSpeakerBoost,
		},
	}
}

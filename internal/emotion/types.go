// Package emotion models primary emotions, the simulated body state they
// drive, and the in-process store that tracks both.
package emotion

import (
	"log/slog"
	"strings"
	"time"
)

// Primary is one of the six basic emotion categories plus neutral.
type Primary string

const (
	Joy      Primary = "joy"
	Sadness  Primary = "sadness"
	Anger    Primary = "anger"
	Fear     Primary = "fear"
	Disgust  Primary = "disgust"
	Surprise Primary = "surprise"
	Neutral  Primary = "neutral"
)

// Primaries lists every recognized primary emotion.
var Primaries = []Primary{Joy, Sadness, Anger, Fear, Disgust, Surprise, Neutral}

// Result is a detected emotion with its intensity in [0,1].
type Result struct {
	Type      Primary `json:"type"`
	Intensity float64 `json:"intensity"`
}

// Valence is the polarity of an emotion.
type Valence string

const (
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	ValenceNeutral  Valence = "neutral"
)

// ValenceOf returns the polarity of a primary emotion.
func ValenceOf(p Primary) Valence {
	switch p {
	case Joy, Surprise:
		return ValencePositive
	case Sadness, Anger, Fear, Disgust:
		return ValenceNegative
	default:
		return ValenceNeutral
	}
}

// ValenceOfLabel returns the polarity of a loose feeling label. An
// unrecognized label is neutral rather than taking Normalize's joy
// default.
func ValenceOfLabel(label string) Valence {
	key := strings.ToLower(strings.TrimSpace(label))
	if p, ok := synonyms[key]; ok {
		return ValenceOf(p)
	}
	return ValenceNeutral
}

// Memory is an emotionally charged moment recorded by the store. Created
// only for registrations above the salience cutoff, never mutated after.
type Memory struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Salience    float64   `json:"salience"`
	Timestamp   time.Time `json:"timestamp"`
	Emotions    []Primary `json:"associated_emotions"`
}

// SomaticMarker is a stored context-to-feeling association used for
// intuitive recall, outside the voice pipeline. Immutable once created.
type SomaticMarker struct {
	ID       string    `json:"id"`
	Context  string    `json:"context"`
	Feeling  string    `json:"feeling"`
	Strength float64   `json:"strength"`
	Valence  Valence   `json:"valence"`
	Created  time.Time `json:"created"`
}

// synonyms maps loose external labels onto primary emotions.
var synonyms = map[string]Primary{
	"joy": Joy, "happy": Joy, "happiness": Joy, "excited": Joy,
	"excitement": Joy, "delight": Joy, "content": Joy, "love": Joy,
	"sadness": Sadness, "sad": Sadness, "grief": Sadness, "sorrow": Sadness,
	"depressed": Sadness, "melancholy": Sadness, "lonely": Sadness,
	"anger": Anger, "angry": Anger, "rage": Anger, "fury": Anger,
	"furious": Anger, "annoyed": Anger, "frustrated": Anger,
	"fear": Fear, "afraid": Fear, "scared": Fear, "anxious": Fear,
	"anxiety": Fear, "terror": Fear, "worried": Fear, "nervous": Fear,
	"disgust": Disgust, "disgusted": Disgust, "revulsion": Disgust,
	"contempt": Disgust, "gross": Disgust,
	"surprise": Surprise, "surprised": Surprise, "shock": Surprise,
	"shocked": Surprise, "astonished": Surprise, "amazed": Surprise,
	"neutral": Neutral, "calm": Neutral, "none": Neutral,
}

// Normalize maps an arbitrary emotion label onto a primary emotion. An
// unrecognized label defaults to joy with a warning; it never fails.
func Normalize(label string) Primary {
	key := strings.ToLower(strings.TrimSpace(label))
	if p, ok := synonyms[key]; ok {
		return p
	}
	slog.Warn("unrecognized emotion label, defaulting to joy", "label", label)
	return Joy
}

// ClampIntensity bounds an intensity to [0,1].
func ClampIntensity(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

package voicestate

import (
	"time"

	"github.com/easeaico/emotive-voice/internal/emotion"
)

// Mapper normalizes raw emotion sources into the canonical State and
// blends states for transitions. All methods are total.
type Mapper struct {
	now func() time.Time
}

// NewMapper returns a Mapper.
func NewMapper() *Mapper {
	return &Mapper{now: time.Now}
}

// Neutral returns the fixed baseline state.
func (m *Mapper) Neutral() State {
	body := emotion.Baseline()
	return State{
		Primary:   emotion.Neutral,
		Intensity: 0,
		Body:      &body,
		Feelings:  []Feeling{FeelingCalm, FeelingNeutral},
		Timestamp: m.now(),
	}
}

// Dominant picks the highest-intensity entry; ties go to the first listed.
// The second return is false when the list is empty.
func Dominant(results []emotion.Result) (emotion.Result, bool) {
	if len(results) == 0 {
		return emotion.Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Intensity > best.Intensity {
			best = r
		}
	}
	return best, true
}

// FromSource maps a raw source onto the canonical state. An empty source
// yields the neutral baseline.
func (m *Mapper) FromSource(src Source) State {
	dom, ok := Dominant(src.Emotions)
	if !ok {
		return m.Neutral()
	}

	state := State{
		Primary:   dom.Type,
		Intensity: emotion.ClampIntensity(dom.Intensity),
		Body:      copyBody(src.Body),
		Feelings:  filterFeelings(src.Feelings),
		Timestamp: m.now(),
	}
	state.Nuance = inferNuance(state)
	return state
}

// Blend transitions between two states. Discrete fields (primary and
// nuanced emotion) jump to the target once factor crosses 0.5; intensity
// and body fields interpolate linearly; background feelings take the
// target's when present.
func (m *Mapper) Blend(current, target State, factor float64) State {
	factor = emotion.ClampIntensity(factor)

	out := State{
		Primary:   current.Primary,
		Nuance:    current.Nuance,
		Intensity: lerp(current.Intensity, target.Intensity, factor),
		Timestamp: m.now(),
	}
	if factor > 0.5 {
		out.Primary = target.Primary
		out.Nuance = target.Nuance
	}

	switch {
	case current.Body != nil && target.Body != nil:
		blended := emotion.BodyState{
			HeartRate:   lerp(current.Body.HeartRate, target.Body.HeartRate, factor),
			Temperature: lerp(current.Body.Temperature, target.Body.Temperature, factor),
			Tension:     lerp(current.Body.Tension, target.Body.Tension, factor),
			Energy:      lerp(current.Body.Energy, target.Body.Energy, factor),
			Breathing:   lerp(current.Body.Breathing, target.Body.Breathing, factor),
		}
		out.Body = &blended
	case target.Body != nil:
		out.Body = copyBody(target.Body)
	case current.Body != nil:
		out.Body = copyBody(current.Body)
	}

	if len(target.Feelings) > 0 {
		out.Feelings = append([]Feeling(nil), target.Feelings...)
	} else {
		out.Feelings = append([]Feeling(nil), current.Feelings...)
	}
	return out
}

// inferNuance derives the finer-grained emotion label from intensity
// bands, body-state thresholds, and background feelings.
func inferNuance(s State) string {
	lowEnergy := s.Body != nil && s.Body.Energy < 0.3
	switch s.Primary {
	case emotion.Joy:
		switch {
		case s.Intensity > 0.8:
			return "euphoric"
		case s.Intensity > 0.6:
			return "excited"
		case lowEnergy:
			return "content"
		case s.HasFeeling(FeelingCalm):
			return "peaceful"
		case s.Intensity > 0.4:
			return "happy"
		default:
			return "content"
		}
	case emotion.Sadness:
		switch {
		case s.Intensity > 0.8:
			return "devastated"
		case s.Intensity > 0.6:
			return "sorrowful"
		case lowEnergy:
			return "weary"
		case s.HasFeeling(FeelingCalm):
			return "melancholic"
		case s.Intensity > 0.4:
			return "sad"
		default:
			return "wistful"
		}
	case emotion.Anger:
		tense := s.Body != nil && s.Body.Tension > 0.6
		switch {
		case s.Intensity > 0.8:
			return "furious"
		case s.Intensity > 0.6:
			return "angry"
		case tense:
			return "frustrated"
		case s.Intensity > 0.4:
			return "irritated"
		default:
			return "annoyed"
		}
	case emotion.Fear:
		breathless := s.Body != nil && s.Body.Breathing > 0.6
		switch {
		case s.Intensity > 0.8:
			return "terrified"
		case s.Intensity > 0.6:
			return "afraid"
		case breathless:
			return "panicked"
		case s.Intensity > 0.4:
			return "anxious"
		default:
			return "uneasy"
		}
	case emotion.Disgust:
		switch {
		case s.Intensity > 0.7:
			return "revolted"
		case s.Intensity > 0.4:
			return "disgusted"
		default:
			return "averse"
		}
	case emotion.Surprise:
		switch {
		case s.Intensity > 0.7:
			return "astonished"
		case s.Intensity > 0.4:
			return "surprised"
		default:
			return "curious"
		}
	default:
		if s.HasFeeling(FeelingCalm) {
			return "calm"
		}
		return ""
	}
}

func filterFeelings(raw []string) []Feeling {
	var out []Feeling
	for _, label := range raw {
		f := Feeling(label)
		if KnownFeeling(f) {
			out = append(out, f)
		}
	}
	return out
}

func copyBody(b *emotion.BodyState) *emotion.BodyState {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func lerp(a, b, factor float64) float64 {
	return a + (b-a)*factor
}

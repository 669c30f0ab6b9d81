package provider

import (
	"fmt"
	"sort"

	"github.com/easeaico/emotive-voice/internal/emotion"
	"github.com/easeaico/emotive-voice/internal/voicestate"
)

// Cartesia vendor limits.
const (
	cartesiaMinSpeed  = 0.6
	cartesiaMaxSpeed  = 1.5
	cartesiaMinVolume = 0.5
	cartesiaMaxVolume = 2.0
	cartesiaModel     = "sonic-3"
)

// cartesiaBuckets maps each primary emotion to its low/medium/high
// vocabulary entries, split at intensity 0.35 and 0.7.
var cartesiaBuckets = map[emotion.Primary][3]string{
	emotion.Joy:      {"contentment", "happiness", "elation"},
	emotion.Sadness:  {"wistfulness", "sadness", "grief"},
	emotion.Anger:    {"annoyance", "anger", "fury"},
	emotion.Fear:     {"unease", "anxiety", "terror"},
	emotion.Disgust:  {"distaste", "disgust", "revulsion"},
	emotion.Surprise: {"curiosity", "surprise", "astonishment"},
	emotion.Neutral:  {"neutrality", "neutrality", "neutrality"},
}

// cartesiaNuances maps nuanced emotion labels straight onto vocabulary
// entries; an exact hit here wins over the intensity bucket.
var cartesiaNuances = map[string]string{
	"euphoric": "euphoria", "excited": "excitement", "happy": "happiness",
	"content": "contentment", "peaceful": "serenity",
	"devastated": "despair", "sorrowful": "sorrow", "sad": "sadness",
	"melancholic": "melancholy", "wistful": "wistfulness", "weary": "weariness",
	"furious": "fury", "angry": "anger", "frustrated": "frustration",
	"irritated": "irritation", "annoyed": "annoyance",
	"terrified": "terror", "afraid": "fear", "panicked": "panic",
	"anxious": "anxiety", "uneasy": "unease",
	"revolted": "revulsion", "disgusted": "disgust", "averse": "distaste",
	"astonished": "astonishment", "surprised": "surprise", "curious": "curiosity",
	"calm": "calmness",
}

// cartesiaExtraVocabulary rounds out the vendor vocabulary beyond what the
// bucket and nuance tables reach.
var cartesiaExtraVocabulary = []string{
	"admiration", "adoration", "affection", "amusement", "awe", "boredom",
	"confidence", "confusion", "determination", "disappointment", "doubt",
	"eagerness", "embarrassment", "envy", "gratitude", "guilt", "hope",
	"interest", "longing", "nostalgia", "pride", "relief", "remorse",
	"satisfaction", "shame", "sympathy", "tenderness", "triumph", "warmth",
	"yearning",
}

var cartesiaEmotiveVoiceIDs = []string{
	"a0e99841-438c-4a64-b679-ae501e7d6091",
	"79a125e8-cd45-4c13-8a67-188112f4dd22",
	"b7d50908-b17c-442d-ad8d-810c63997ed9",
	"c2ac25f9-ecc4-4f56-9095-651354df60c0",
}

// Cartesia maps emotive state onto Cartesia Sonic generation controls and
// SSML-like inline tags.
type Cartesia struct {
	vocabulary []string
}

// NewCartesia returns the Cartesia adapter.
func NewCartesia() *Cartesia {
	seen := map[string]bool{}
	var vocab []string
	add := func(entry string) {
		if !seen[entry] {
			seen[entry] = true
			vocab = append(vocab, entry)
		}
	}
	for _, bucket := range cartesiaBuckets {
		for _, entry := range bucket {
			add(entry)
		}
	}
	for _, entry := range cartesiaNuances {
		add(entry)
	}
	for _, entry := range cartesiaExtraVocabulary {
		add(entry)
	}
	sort.Strings(vocab)
	return &Cartesia{vocabulary: vocab}
}

func (c *Cartesia) Name() string           { return "cartesia" }
func (c *Cartesia) SupportsEmotions() bool { return true }
func (c *Cartesia) SupportsSSML() bool     { return true }

// SupportedEmotions returns the full vendor emotion vocabulary.
func (c *Cartesia) SupportedEmotions() []string {
	out := make([]string, len(c.vocabulary))
	copy(out, c.vocabulary)
	return out
}

// EmotiveVoices lists Sonic voice ids that honor emotion controls.
func (c *Cartesia) EmotiveVoices() []string {
	out := make([]string, len(cartesiaEmotiveVoiceIDs))
	copy(out, cartesiaEmotiveVoiceIDs)
	return out
}

// SelectEmotion picks the vocabulary entry for a state: an exact nuance
// mapping when one exists, otherwise the primary's intensity bucket.
func (c *Cartesia) SelectEmotion(state voicestate.State) string {
	if mapped, ok := cartesiaNuances[state.Nuance]; ok {
		return mapped
	}
	bucket, ok := cartesiaBuckets[state.Primary]
	if !ok {
		return "neutrality"
	}
	switch {
	case state.Intensity < 0.35:
		return bucket[0]
	case state.Intensity < 0.7:
		return bucket[1]
	default:
		return bucket[2]
	}
}

// CalculateModifiers derives speed and volume from the body state. A state
// without a body skips body-derived modifiers and returns nil.
func (c *Cartesia) CalculateModifiers(state voicestate.State) *Modifiers {
	if state.Body == nil {
		return nil
	}

	energy := state.Body.Energy
	var speed float64
	switch {
	case energy < 0.3:
		speed = 0.8 + (energy/0.3)*0.15
	case energy <= 0.7:
		speed = 0.95 + ((energy-0.3)/0.4)*0.1
	default:
		speed = 1.05 + ((energy-0.7)/0.3)*0.25
	}

	volume := 1.0
	if state.Body.Tension > 0.6 {
		volume += 0.25
	}
	if state.Intensity > 0.7 {
		volume += 0.25
	}

	return &Modifiers{
		Speed:  clamp(speed, cartesiaMinSpeed, cartesiaMaxSpeed),
		Volume: clamp(volume, cartesiaMinVolume, cartesiaMaxVolume),
	}
}

// MapEmotion converts the state into Cartesia emotion parameters.
func (c *Cartesia) MapEmotion(state voicestate.State) Params {
	selected := c.SelectEmotion(state)
	params := Params{
		Provider:  c.Name(),
		Emotion:   selected,
		Emotions:  []string{selected},
		Modifiers: c.CalculateModifiers(state),
		SSMLTags:  c.ssmlTags(state),
	}
	return params
}

// ssmlTags emits the ordered tag list: emotion first, then speed and
// volume when they deviate from 1.0 by more than 0.05.
func (c *Cartesia) ssmlTags(state voicestate.State) []string {
	tags := []string{fmt.Sprintf("<emotion:%s>", c.SelectEmotion(state))}
	mods := c.CalculateModifiers(state)
	if mods == nil {
		return tags
	}
	if deviates(mods.Speed) {
		tags = append(tags, fmt.Sprintf("<speed:%.2f>", mods.Speed))
	}
	if deviates(mods.Volume) {
		tags = append(tags, fmt.Sprintf("<volume:%.2f>", mods.Volume))
	}
	return tags
}

// ApplyToText prepends the ordered tag list to the text.
func (c *Cartesia) ApplyToText(text string, state voicestate.State) string {
	tags := c.ssmlTags(state)
	out := ""
	for _, tag := range tags {
		out += tag + " "
	}
	return out + text
}

// GenerateConfig builds the opaque generation_config blob callers forward
// to the vendor.
func (c *Cartesia) GenerateConfig(state voicestate.State) map[string]any {
	gen := map[string]any{
		"model_id": cartesiaModel,
		"emotion":  []string{c.SelectEmotion(state)},
	}
	if mods := c.CalculateModifiers(state); mods != nil {
		gen["speed"] = mods.Speed
		gen["volume"] = mods.Volume
	}
	return map[string]any{"generation_config": gen}
}

func deviates(v float64) bool {
	return v > 1.05 || v < 0.95
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

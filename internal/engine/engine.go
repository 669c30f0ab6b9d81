// Package engine composes the analyzer, state store, mapper, and the
// active provider adapter into one speech-preparation pipeline.
package engine

import (
	"log/slog"

	"github.com/easeaico/emotive-voice/internal/provider"
	"github.com/easeaico/emotive-voice/internal/voicestate"
)

// Config selects the initial provider and whether inline markup renders.
type Config struct {
	Provider     string
	EnableMarkup bool
}

// Prepared bundles everything an external TTS caller needs for one
// utterance.
type Prepared struct {
	Text   string          `json:"text"`
	Config map[string]any  `json:"config"`
	Params provider.Params `json:"params"`
}

// Engine holds the current emotive voice state and the active adapter.
// Calls are serialized by the host; the engine itself takes no locks.
type Engine struct {
	adapter      provider.Adapter
	mapper       *voicestate.Mapper
	state        voicestate.State
	enableMarkup bool
}

// New builds an engine for the configured provider, starting neutral.
func New(cfg Config) (*Engine, error) {
	name := cfg.Provider
	if name == "" {
		name = "cartesia"
	}
	adapter, err := provider.New(name)
	if err != nil {
		return nil, err
	}
	mapper := voicestate.NewMapper()
	return &Engine{
		adapter:      adapter,
		mapper:       mapper,
		state:        mapper.Neutral(),
		enableMarkup: cfg.EnableMarkup,
	}, nil
}

// Provider returns the active provider name.
func (e *Engine) Provider() string {
	return e.adapter.Name()
}

// SetProvider hot-swaps the active adapter.
func (e *Engine) SetProvider(name string) error {
	adapter, err := provider.New(name)
	if err != nil {
		return err
	}
	e.adapter = adapter
	slog.Info("voice provider switched", "provider", adapter.Name())
	return nil
}

// State returns the current emotive voice state.
func (e *Engine) State() voicestate.State {
	return e.state
}

// SetState replaces the current state.
func (e *Engine) SetState(s voicestate.State) {
	e.state = s
}

// Reset returns the current state to the neutral baseline.
func (e *Engine) Reset() {
	e.state = e.mapper.Neutral()
}

// UpdateFromSource maps a raw emotion source into the canonical state and
// makes it current.
func (e *Engine) UpdateFromSource(src voicestate.Source) voicestate.State {
	e.state = e.mapper.FromSource(src)
	return e.state
}

// BlendTo eases the current state toward target by factor and makes the
// result current.
func (e *Engine) BlendTo(target voicestate.State, factor float64) voicestate.State {
	e.state = e.mapper.Blend(e.state, target, factor)
	return e.state
}

// MapEmotion maps the current state through the active adapter.
func (e *Engine) MapEmotion() provider.Params {
	return e.adapter.MapEmotion(e.state)
}

// ApplyToText renders inline markup into text. It is a no-op unless
// markup is enabled and the adapter supports it.
func (e *Engine) ApplyToText(text string) string {
	if !e.enableMarkup || !e.adapter.SupportsSSML() {
		return text
	}
	return e.adapter.ApplyToText(text, e.state)
}

// ProviderConfig builds the vendor config blob for the current state.
func (e *Engine) ProviderConfig() map[string]any {
	return e.adapter.GenerateConfig(e.state)
}

// Prepare composes text markup, vendor config, and emotion parameters
// for one utterance. A non-nil state becomes current first.
func (e *Engine) Prepare(text string, state *voicestate.State) Prepared {
	if state != nil {
		e.state = *state
	}
	return Prepared{
		Text:   e.ApplyToText(text),
		Config: e.ProviderConfig(),
		Params: e.MapEmotion(),
	}
}

// Capability queries over the active adapter.

func (e *Engine) SupportsEmotions() bool      { return e.adapter.SupportsEmotions() }
func (e *Engine) SupportsSSML() bool          { return e.adapter.SupportsSSML() }
func (e *Engine) SupportedEmotions() []string { return e.adapter.SupportedEmotions() }
func (e *Engine) EmotiveVoices() []string     { return e.adapter.EmotiveVoices() }

package provider

import "github.com/easeaico/emotive-voice/internal/voicestate"

// Passthrough is the safe default for recognized vendors without emotion
// support. It emits empty parameters and leaves text untouched.
type Passthrough struct {
	name string
}

// NewPassthrough returns a passthrough adapter reporting the given
// provider name.
func NewPassthrough(name string) *Passthrough {
	if name == "" {
		name = "passthrough"
	}
	return &Passthrough{name: name}
}

func (p *Passthrough) Name() string           { return p.name }
func (p *Passthrough) SupportsEmotions() bool { return false }
func (p *Passthrough) SupportsSSML() bool     { return false }

func (p *Passthrough) SupportedEmotions() []string { return nil }
func (p *Passthrough) EmotiveVoices() []string     { return nil }

func (p *Passthrough) MapEmotion(_ voicestate.State) Params {
	return Params{Provider: p.name}
}

func (p *Passthrough) ApplyToText(text string, _ voicestate.State) string {
	return text
}

func (p *Passthrough) GenerateConfig(_ voicestate.State) map[string]any {
	return map[string]any{}
}

package synthesis

import (
	"github.com/easeaico/emotive-voice/internal/engine"
)

// FromPrepared converts an engine preparation into a synthesis request.
// Descriptive config fields become delivery instructions, and a speed
// modifier carries over when the adapter produced one.
func FromPrepared(p engine.Prepared, voice string) Request {
	req := Request{
		Text:  p.Text,
		Voice: voice,
	}

	if desc, ok := p.Config["voice_description"].(string); ok {
		req.Instructions = desc
	}
	if gen, ok := p.Config["generation_config"].(map[string]any); ok {
		if speed, ok := gen["speed"].(float64); ok {
			req.Speed = speed
		}
	}
	if req.Speed == 0 && p.Params.Modifiers != nil {
		req.Speed = p.Params.Modifiers.Speed
	}
	return req
}

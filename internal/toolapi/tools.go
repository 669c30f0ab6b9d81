package toolapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/easeaico/emotive-voice/internal/emotion"
	"github.com/easeaico/emotive-voice/internal/engine"
	"github.com/easeaico/emotive-voice/internal/profile"
	"github.com/easeaico/emotive-voice/internal/synthesis"
	"github.com/easeaico/emotive-voice/internal/voicestate"
)

// Deps are the collaborators the tool set operates on. LLMAnalyzer,
// Profiles, and Synthesizer are optional; the tools that need them only
// register when they are present.
type Deps struct {
	Engine      *engine.Engine
	Store       *emotion.Store
	Analyzer    *emotion.Analyzer
	LLMAnalyzer *emotion.LLMAnalyzer
	Profiles    *profile.Selector
	Synthesizer synthesis.Synthesizer
}

func stringSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func numberSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: desc}
}

// RegisterAll wires the full tool set onto the server and hooks idle
// decay to run once per inbound invocation.
func RegisterAll(s *Server, deps Deps) error {
	s.OnDispatch(func() {
		deps.Store.Decay()
	})

	tools := []Tool{
		{
			Name:        "analyze_text",
			Description: "Detects emotions in text, feeds them into the live state, and returns both.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"text": stringSchema("Text to analyze."),
			}, "text"),
			Handler: deps.analyzeText,
		},
		{
			Name:        "feel",
			Description: "Registers an explicit emotion event against the live state.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"emotion":   stringSchema("Emotion label; loose synonyms are accepted."),
				"intensity": numberSchema("Event intensity in [0,1]."),
				"cause":     stringSchema("What triggered the emotion."),
			}, "emotion", "intensity", "cause"),
			Handler: deps.feel,
		},
		{
			Name:        "get_state",
			Description: "Returns the current emotive voice state, body state, and background feelings.",
			InputSchema: ObjectSchema(nil),
			Handler:     deps.getState,
		},
		{
			Name:        "prepare_speech",
			Description: "Renders text, provider config, and emotion params for the active provider.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"text": stringSchema("Text to speak."),
			}, "text"),
			Handler: deps.prepareSpeech,
		},
		{
			Name:        "set_provider",
			Description: "Hot-swaps the active TTS provider adapter.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"provider": stringSchema("Provider name."),
			}, "provider"),
			Handler: deps.setProvider,
		},
		{
			Name:        "reset_state",
			Description: "Returns the live state to the neutral baseline.",
			InputSchema: ObjectSchema(nil),
			Handler:     deps.resetState,
		},
		{
			Name:        "add_somatic_marker",
			Description: "Stores a context-to-feeling association for later intuitive recall.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"context":  stringSchema("Situation the feeling attaches to."),
				"feeling":  stringSchema("The gut feeling."),
				"strength": numberSchema("Association strength in [0,1]."),
				"valence":  stringSchema("positive, negative, or neutral."),
			}, "context", "feeling"),
			Handler: deps.addSomaticMarker,
		},
		{
			Name:        "recall_markers",
			Description: "Recalls somatic markers whose context matches a query.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"context": stringSchema("Situation to match against stored contexts."),
			}, "context"),
			Handler: deps.recallMarkers,
		},
		{
			Name:        "get_capabilities",
			Description: "Reports what the active provider supports.",
			InputSchema: ObjectSchema(nil),
			Handler:     deps.getCapabilities,
		},
	}

	if deps.Profiles != nil {
		tools = append(tools, Tool{
			Name:        "select_voice",
			Description: "Finds voices for the active provider matching a style description.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"description": stringSchema("Free-text voice style description."),
			}, "description"),
			Handler: deps.selectVoice,
		}, Tool{
			Name:        "list_voices",
			Description: "Lists the stored voice profiles for the active provider.",
			InputSchema: ObjectSchema(nil),
			Handler:     deps.listVoices,
		}, Tool{
			Name:        "get_voice_profile",
			Description: "Looks up one voice profile for the active provider by speaker.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"speaker": stringSchema("Speaker name."),
			}, "speaker"),
			Handler: deps.getVoiceProfile,
		})
	}
	if deps.Synthesizer != nil {
		tools = append(tools, Tool{
			Name:        "synthesize",
			Description: "Prepares and synthesizes text, returning base64 audio.",
			InputSchema: ObjectSchema(map[string]*jsonschema.Schema{
				"text":  stringSchema("Text to speak."),
				"voice": stringSchema("Provider voice name."),
			}, "text"),
			Handler: deps.synthesize,
		})
	}

	for _, t := range tools {
		if err := s.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// currentSource snapshots the store as a raw emotion source.
func (d Deps) currentSource() voicestate.Source {
	body := d.Store.Body()
	return voicestate.Source{
		Emotions: d.Store.Active(),
		Body:     &body,
		Feelings: d.Store.BackgroundFeelings(),
	}
}

func (d Deps) analyzeText(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Text == nil {
		return nil, InvalidParams("missing required parameter: text")
	}

	results := d.Analyzer.Analyze(*in.Text)
	if d.LLMAnalyzer != nil {
		if refined, err := d.LLMAnalyzer.Analyze(ctx, *in.Text); err == nil && refined.Type != emotion.Neutral {
			results = []emotion.Result{refined}
		} else if err != nil {
			slog.Warn("llm analysis failed, keeping keyword results", "error", err)
		}
	}
	for _, r := range results {
		d.Store.Register(r.Type, r.Intensity, *in.Text)
	}
	state := d.Engine.UpdateFromSource(d.currentSource())
	return map[string]any{
		"emotions": results,
		"state":    state,
	}, nil
}

func (d Deps) feel(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Emotion   *string  `json:"emotion"`
		Intensity *float64 `json:"intensity"`
		Cause     *string  `json:"cause"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	switch {
	case in.Emotion == nil:
		return nil, InvalidParams("missing required parameter: emotion")
	case in.Intensity == nil:
		return nil, InvalidParams("missing required parameter: intensity")
	case in.Cause == nil:
		return nil, InvalidParams("missing required parameter: cause")
	}

	p := emotion.Normalize(*in.Emotion)
	d.Store.Register(p, *in.Intensity, *in.Cause)
	state := d.Engine.UpdateFromSource(d.currentSource())
	return map[string]any{"state": state}, nil
}

func (d Deps) getState(_ context.Context, _ json.RawMessage) (any, error) {
	return map[string]any{
		"state":               d.Engine.State(),
		"active_emotions":     d.Store.Active(),
		"body_state":          d.Store.Body(),
		"background_feelings": d.Store.BackgroundFeelings(),
		"memories":            d.Store.Memories(),
	}, nil
}

func (d Deps) prepareSpeech(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Text == nil {
		return nil, InvalidParams("missing required parameter: text")
	}
	return d.Engine.Prepare(*in.Text, nil), nil
}

func (d Deps) setProvider(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Provider *string `json:"provider"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Provider == nil {
		return nil, InvalidParams("missing required parameter: provider")
	}
	if err := d.Engine.SetProvider(*in.Provider); err != nil {
		return nil, InvalidParams("%v", err)
	}
	return map[string]any{"provider": d.Engine.Provider()}, nil
}

func (d Deps) resetState(_ context.Context, _ json.RawMessage) (any, error) {
	d.Store.Reset()
	d.Engine.Reset()
	return map[string]any{"state": d.Engine.State()}, nil
}

func (d Deps) addSomaticMarker(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Context  *string `json:"context"`
		Feeling  *string `json:"feeling"`
		Strength float64 `json:"strength"`
		Valence  string  `json:"valence"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Context == nil {
		return nil, InvalidParams("missing required parameter: context")
	}
	if in.Feeling == nil {
		return nil, InvalidParams("missing required parameter: feeling")
	}

	valence := emotion.Valence(in.Valence)
	switch valence {
	case emotion.ValencePositive, emotion.ValenceNegative, emotion.ValenceNeutral:
	case "":
		// Absent valence derives from the feeling label.
		valence = emotion.ValenceOfLabel(*in.Feeling)
	default:
		return nil, InvalidParams("invalid valence: %q", in.Valence)
	}

	marker := d.Store.AddMarker(*in.Context, *in.Feeling, in.Strength, valence)
	return map[string]any{"marker": marker}, nil
}

func (d Deps) recallMarkers(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Context *string `json:"context"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Context == nil {
		return nil, InvalidParams("missing required parameter: context")
	}
	return map[string]any{"markers": d.Store.RecallMarkers(*in.Context)}, nil
}

func (d Deps) getCapabilities(_ context.Context, _ json.RawMessage) (any, error) {
	return map[string]any{
		"provider":           d.Engine.Provider(),
		"supports_emotions":  d.Engine.SupportsEmotions(),
		"supports_ssml":      d.Engine.SupportsSSML(),
		"supported_emotions": d.Engine.SupportedEmotions(),
		"emotive_voices":     d.Engine.EmotiveVoices(),
	}, nil
}

func (d Deps) selectVoice(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Description == nil {
		return nil, InvalidParams("missing required parameter: description")
	}

	matches, err := d.Profiles.Select(ctx, d.Engine.Provider(), *in.Description)
	if err != nil {
		return nil, err
	}
	return map[string]any{"matches": matches}, nil
}

func (d Deps) listVoices(ctx context.Context, _ json.RawMessage) (any, error) {
	profiles, err := d.Profiles.List(ctx, d.Engine.Provider())
	if err != nil {
		return nil, err
	}
	return map[string]any{"profiles": profiles}, nil
}

func (d Deps) getVoiceProfile(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Speaker *string `json:"speaker"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Speaker == nil {
		return nil, InvalidParams("missing required parameter: speaker")
	}

	p, err := d.Profiles.Get(ctx, d.Engine.Provider(), *in.Speaker)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, InvalidParams("no voice profile for speaker %q", *in.Speaker)
	}
	return map[string]any{"profile": p}, nil
}

func (d Deps) synthesize(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Text  *string `json:"text"`
		Voice string  `json:"voice"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, InvalidParams("bad arguments: %v", err)
	}
	if in.Text == nil {
		return nil, InvalidParams("missing required parameter: text")
	}

	prepared := d.Engine.Prepare(*in.Text, nil)
	audio, err := d.Synthesizer.Synthesize(ctx, synthesis.FromPrepared(prepared, in.Voice))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"text":     prepared.Text,
		"params":   prepared.Params,
		"audio":    base64.StdEncoding.EncodeToString(audio),
		"provider": d.Engine.Provider(),
	}, nil
}

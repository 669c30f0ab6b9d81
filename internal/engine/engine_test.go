package engine

import (
	"errors"
	"testing"

	"github.com/easeaico/emotive-voice/internal/emotion"
	"github.com/easeaico/emotive-voice/internal/provider"
	"github.com/easeaico/emotive-voice/internal/voicestate"
)

func TestNewStartsNeutral(t *testing.T) {
	e, err := New(Config{Provider: "maya", EnableMarkup: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.State().Primary != emotion.Neutral || e.State().Intensity != 0 {
		t.Fatalf("expected neutral start, got %#v", e.State())
	}
	if e.Provider() != "maya" {
		t.Fatalf("expected maya provider, got %q", e.Provider())
	}
}

func TestNewUnknownProvider(t *testing.T) {
	if _, err := New(Config{Provider: "nope"}); !errors.Is(err, provider.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestUpdateFromSourceAndReset(t *testing.T) {
	e, _ := New(Config{Provider: "maya"})
	state := e.UpdateFromSource(voicestate.Source{
		Emotions: []emotion.Result{{Type: emotion.Anger, Intensity: 0.8}},
	})
	if state.Primary != emotion.Anger || e.State().Primary != emotion.Anger {
		t.Fatalf("update should set current state, got %#v", e.State())
	}
	e.Reset()
	if e.State().Primary != emotion.Neutral {
		t.Fatalf("reset should restore neutral, got %#v", e.State())
	}
}

func TestApplyToTextDisabledMarkup(t *testing.T) {
	e, _ := New(Config{Provider: "maya", EnableMarkup: false})
	e.UpdateFromSource(voicestate.Source{Emotions: []emotion.Result{{Type: emotion.Anger, Intensity: 0.9}}})
	if got := e.ApplyToText("Go away."); got != "Go away." {
		t.Fatalf("disabled markup must be a no-op, got %q", got)
	}
}

func TestApplyToTextUnsupportedAdapter(t *testing.T) {
	e, _ := New(Config{Provider: "elevenlabs", EnableMarkup: true})
	e.UpdateFromSource(voicestate.Source{Emotions: []emotion.Result{{Type: emotion.Anger, Intensity: 0.9}}})
	if got := e.ApplyToText("Go away."); got != "Go away." {
		t.Fatalf("adapter without markup support must be a no-op, got %q", got)
	}
}

func TestPrepareComposesOutputs(t *testing.T) {
	e, _ := New(Config{Provider: "maya", EnableMarkup: true})
	state := voicestate.State{Primary: emotion.Joy, Intensity: 0.9}

	prepared := e.Prepare("That's wonderful!", &state)
	if prepared.Text != "<laugh> That's wonderful!" {
		t.Fatalf("unexpected text %q", prepared.Text)
	}
	if prepared.Params.Provider != "maya" {
		t.Fatalf("unexpected params %#v", prepared.Params)
	}
	if _, ok := prepared.Config["voice_description"]; !ok {
		t.Fatalf("expected voice description config, got %#v", prepared.Config)
	}
	if e.State().Primary != emotion.Joy {
		t.Fatalf("prepare should adopt the passed state")
	}
}

func TestPrepareUsesCurrentStateWhenNil(t *testing.T) {
	e, _ := New(Config{Provider: "maya", EnableMarkup: true})
	prepared := e.Prepare("Hello.", nil)
	if prepared.Text != "Hello." {
		t.Fatalf("neutral state should add no tags, got %q", prepared.Text)
	}
}

func TestSetProviderHotSwap(t *testing.T) {
	e, _ := New(Config{Provider: "maya", EnableMarkup: true})
	if err := e.SetProvider("elevenlabs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Provider() != "elevenlabs" || e.SupportsSSML() {
		t.Fatalf("expected elevenlabs adapter, got %q", e.Provider())
	}
	if err := e.SetProvider("bogus"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
	if e.Provider() != "elevenlabs" {
		t.Fatalf("failed swap must keep the old adapter")
	}
}

func TestBlendTo(t *testing.T) {
	e, _ := New(Config{Provider: "maya"})
	target := voicestate.State{Primary: emotion.Joy, Intensity: 1}

	state := e.BlendTo(target, 0.4)
	if state.Primary != emotion.Neutral {
		t.Fatalf("below the switch point the primary stays, got %#v", state)
	}
	state = e.BlendTo(target, 0.9)
	if state.Primary != emotion.Joy {
		t.Fatalf("expected switch to target, got %#v", state)
	}
}

func TestCapabilityQueries(t *testing.T) {
	e, _ := New(Config{Provider: "cartesia"})
	if !e.SupportsEmotions() || !e.SupportsSSML() {
		t.Fatalf("cartesia supports emotions and markup")
	}
	if len(e.SupportedEmotions()) < 60 || len(e.EmotiveVoices()) == 0 {
		t.Fatalf("expected cartesia vocabulary and voices")
	}
	_ = e.SetProvider("openai")
	if e.SupportsEmotions() || len(e.SupportedEmotions()) != 0 {
		t.Fatalf("passthrough reports no emotion support")
	}
}

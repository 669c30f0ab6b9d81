package emotion

import (
	"testing"
	"time"
)

func TestRegisterAppendsAndBoosts(t *testing.T) {
	s := NewStore()

	s.Register(Joy, 0.6, "good news")
	active := s.Active()
	if len(active) != 1 || active[0].Type != Joy || active[0].Intensity != 0.6 {
		t.Fatalf("unexpected active set: %#v", active)
	}

	// Re-registering the same type boosts by half the new intensity.
	s.Register(Joy, 0.4, "more good news")
	active = s.Active()
	if len(active) != 1 {
		t.Fatalf("expected single joy entry, got %#v", active)
	}
	if got, want := active[0].Intensity, 0.8; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("expected boosted intensity %f, got %f", want, got)
	}
}

func TestRegisterBoostCapsAtOne(t *testing.T) {
	s := NewStore()
	s.Register(Anger, 0.9, "")
	s.Register(Anger, 0.9, "")
	if got := s.Active()[0].Intensity; got != 1 {
		t.Fatalf("expected cap at 1, got %f", got)
	}
}

func TestRegisterKeepsTopThree(t *testing.T) {
	s := NewStore()
	s.Register(Joy, 0.2, "")
	s.Register(Sadness, 0.8, "")
	s.Register(Fear, 0.5, "")
	s.Register(Surprise, 0.6, "")

	active := s.Active()
	if len(active) != 3 {
		t.Fatalf("expected three active emotions, got %#v", active)
	}
	if active[0].Type != Sadness || active[1].Type != Surprise || active[2].Type != Fear {
		t.Fatalf("unexpected ordering: %#v", active)
	}
}

func TestRegisterTieKeepsFirstSeen(t *testing.T) {
	s := NewStore()
	s.Register(Fear, 0.5, "")
	s.Register(Surprise, 0.5, "")
	s.Register(Disgust, 0.5, "")

	active := s.Active()
	if active[0].Type != Fear || active[1].Type != Surprise || active[2].Type != Disgust {
		t.Fatalf("ties should keep first-seen order: %#v", active)
	}
}

func TestRegisterCreatesMemoryAboveCutoff(t *testing.T) {
	s := NewStore()
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	s.Register(Joy, 0.5, "mild")
	if got := s.Memories(); len(got) != 0 {
		t.Fatalf("0.5 is not above the cutoff, got %#v", got)
	}

	s.Register(Fear, 0.9, "close call")
	memories := s.Memories()
	if len(memories) != 1 {
		t.Fatalf("expected one memory, got %#v", memories)
	}
	m := memories[0]
	if m.Description != "close call" || m.Salience != 0.9 {
		t.Fatalf("unexpected memory: %#v", m)
	}
	if len(m.Emotions) != 1 || m.Emotions[0] != Fear {
		t.Fatalf("unexpected associated emotions: %#v", m)
	}
	if m.Timestamp != s.now() {
		t.Fatalf("unexpected timestamp: %#v", m)
	}
}

func TestDecayFadesAndDropsEmotions(t *testing.T) {
	s := NewStore()
	s.Register(Joy, 0.8, "")
	s.Register(Fear, 0.11, "")

	s.Decay()
	active := s.Active()
	if len(active) != 2 {
		t.Fatalf("expected both emotions after one tick, got %#v", active)
	}
	if got, want := active[0].Intensity, 0.8*0.95; got != want {
		t.Fatalf("expected faded intensity %f, got %f", want, got)
	}

	s.Decay()
	for _, r := range s.Active() {
		if r.Type == Fear {
			t.Fatalf("fear should drop below the floor, got %#v", s.Active())
		}
	}
}

func TestDecayWithNoEmotionsRelaxesBody(t *testing.T) {
	s := NewStore()
	s.Register(Anger, 1, "")
	s.Reset()

	elevated := s.Body()
	if elevated != Baseline() {
		t.Fatalf("reset should restore baseline, got %#v", elevated)
	}
	for i := 0; i < 10; i++ {
		s.Decay()
		if s.Body() != Baseline() {
			t.Fatalf("decay at baseline should stay at baseline, got %#v", s.Body())
		}
	}
}

func TestDominant(t *testing.T) {
	s := NewStore()
	if _, ok := s.Dominant(); ok {
		t.Fatalf("empty store should have no dominant emotion")
	}
	s.Register(Sadness, 0.4, "")
	s.Register(Joy, 0.7, "")
	dom, ok := s.Dominant()
	if !ok || dom.Type != Joy {
		t.Fatalf("expected joy dominant, got %#v", dom)
	}
}

func TestAddMarker(t *testing.T) {
	s := NewStore()
	m := s.AddMarker("dark alleys", "unease", 1.5, ValenceNegative)
	if m.Strength != 1 {
		t.Fatalf("strength should clamp to 1, got %f", m.Strength)
	}
	markers := s.Markers()
	if len(markers) != 1 || markers[0].Context != "dark alleys" || markers[0].Valence != ValenceNegative {
		t.Fatalf("unexpected markers: %#v", markers)
	}
	if markers[0].ID == "" {
		t.Fatalf("marker should get an id")
	}
}

func TestRecallMarkers(t *testing.T) {
	s := NewStore()
	s.AddMarker("dark alleys at night", "unease", 0.6, ValenceNegative)
	s.AddMarker("grandmother's kitchen", "warmth", 0.8, ValencePositive)
	s.AddMarker("alleys near the docks", "dread", 0.9, ValenceNegative)

	recalled := s.RecallMarkers("ALLEYS")
	if len(recalled) != 2 {
		t.Fatalf("expected two matches, got %#v", recalled)
	}
	if recalled[0].Feeling != "dread" || recalled[1].Feeling != "unease" {
		t.Fatalf("matches should be strongest first, got %#v", recalled)
	}
	if got := s.RecallMarkers(""); got != nil {
		t.Fatalf("empty query should recall nothing, got %#v", got)
	}
}

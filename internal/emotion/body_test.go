package emotion

import (
	"math"
	"testing"
)

func assertBodyInRange(t *testing.T, b BodyState) {
	t.Helper()
	if b.HeartRate < 60 || b.HeartRate > 180 {
		t.Fatalf("heart rate out of range: %#v", b)
	}
	if b.Temperature < -1 || b.Temperature > 1 {
		t.Fatalf("temperature out of range: %#v", b)
	}
	for name, v := range map[string]float64{"tension": b.Tension, "energy": b.Energy, "breathing": b.Breathing} {
		if v < 0 || v > 1 {
			t.Fatalf("%s out of range: %#v", name, b)
		}
	}
}

func TestSimulatorStartsAtBaseline(t *testing.T) {
	s := NewSimulator()
	if s.State() != Baseline() {
		t.Fatalf("expected baseline, got %#v", s.State())
	}
	feelings := s.BackgroundFeelings()
	if len(feelings) != 1 || feelings[0] != "neutral" {
		t.Fatalf("baseline feelings should be neutral, got %#v", feelings)
	}
}

func TestFeelAngerRaisesArousal(t *testing.T) {
	s := NewSimulator()
	before := s.State()

	s.Feel(Anger, 1)

	after := s.State()
	if after.HeartRate <= before.HeartRate {
		t.Fatalf("anger should raise heart rate: %#v -> %#v", before, after)
	}
	if after.Tension <= before.Tension {
		t.Fatalf("anger should raise tension: %#v -> %#v", before, after)
	}
	assertBodyInRange(t, after)
}

func TestFeelAlwaysClamped(t *testing.T) {
	s := NewSimulator()
	for i := 0; i < 50; i++ {
		s.Feel(Fear, 1)
		assertBodyInRange(t, s.State())
	}
	for i := 0; i < 50; i++ {
		s.Feel(Sadness, 1)
		assertBodyInRange(t, s.State())
	}
}

func TestFeelZeroIntensityOnlyDecays(t *testing.T) {
	s := NewSimulator()
	s.Feel(Anger, 1)
	elevated := s.State().Tension

	s.Feel(Anger, 0)
	if s.State().Tension >= elevated {
		t.Fatalf("zero-intensity event should not raise tension: %f -> %f", elevated, s.State().Tension)
	}
	assertBodyInRange(t, s.State())
}

func TestRelaxConvergesMonotonically(t *testing.T) {
	s := NewSimulator()
	s.Feel(Anger, 1)
	s.Feel(Anger, 1)
	base := Baseline()

	prev := math.Abs(s.State().HeartRate - base.HeartRate)
	for i := 0; i < 500; i++ {
		s.Relax()
		assertBodyInRange(t, s.State())
		dist := math.Abs(s.State().HeartRate - base.HeartRate)
		if dist > prev+1e-12 {
			t.Fatalf("relax overshot baseline at step %d: %f > %f", i, dist, prev)
		}
		prev = dist
	}
	if prev > 0.01 {
		t.Fatalf("expected convergence to baseline, still %f away", prev)
	}
}

func TestBackgroundFeelingThresholds(t *testing.T) {
	cases := []struct {
		body BodyState
		want string
	}{
		{BodyState{HeartRate: 72, Energy: 0.8, Tension: 0.3, Breathing: 0.4}, "energized"},
		{BodyState{HeartRate: 72, Energy: 0.2, Tension: 0.3, Breathing: 0.4}, "fatigued"},
		{BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.7, Breathing: 0.4}, "tense"},
		{BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.1, Breathing: 0.4}, "relaxed"},
		{BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.3, Temperature: 0.5, Breathing: 0.4}, "warm"},
		{BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.3, Temperature: -0.5, Breathing: 0.4}, "cold"},
		{BodyState{HeartRate: 120, Energy: 0.5, Tension: 0.3, Breathing: 0.4}, "aroused"},
		{BodyState{HeartRate: 62, Energy: 0.5, Tension: 0.3, Breathing: 0.4}, "calm"},
		{BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.3, Breathing: 0.8}, "breathless"},
		{BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.3, Breathing: 0.1}, "steady"},
	}
	for _, tc := range cases {
		got := FeelingsFor(tc.body)
		found := false
		for _, f := range got {
			if f == tc.want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in feelings for %#v, got %#v", tc.want, tc.body, got)
		}
	}
}

func TestBackgroundFeelingNeutralFallback(t *testing.T) {
	got := FeelingsFor(BodyState{HeartRate: 72, Energy: 0.5, Tension: 0.3, Breathing: 0.4})
	if len(got) != 1 || got[0] != "neutral" {
		t.Fatalf("expected single neutral label, got %#v", got)
	}
}

package emotion

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// maxActive bounds how many emotions stay live at once.
	maxActive = 3
	// memorySalienceCutoff gates memory creation on event intensity.
	memorySalienceCutoff = 0.5
	// emotionDecayFactor shrinks active intensities each idle tick.
	emotionDecayFactor = 0.95
	// emotionDropFloor removes emotions that decayed below it.
	emotionDropFloor = 0.1
)

// Store owns the live emotional state for one process: the active
// emotions, the body simulator, the memory log, and somatic markers.
// It is created once, mutated by every interaction, and never persisted.
type Store struct {
	sim      *Simulator
	active   []Result
	memories []Memory
	markers  []SomaticMarker
	seq      int
	now      func() time.Time
}

// NewStore returns a Store at the neutral baseline.
func NewStore() *Store {
	return &Store{
		sim: NewSimulator(),
		now: time.Now,
	}
}

// Register records a felt emotion. A repeat of an active type boosts its
// intensity by half the new event; a new type appends. Only the top three
// by intensity survive, preserving first-seen order on ties. Events above
// the salience cutoff leave a memory behind.
func (s *Store) Register(p Primary, intensity float64, cause string) {
	intensity = ClampIntensity(intensity)

	boosted := false
	for i := range s.active {
		if s.active[i].Type == p {
			s.active[i].Intensity = ClampIntensity(s.active[i].Intensity + intensity*0.5)
			boosted = true
			break
		}
	}
	if !boosted {
		s.active = append(s.active, Result{Type: p, Intensity: intensity})
	}

	sort.SliceStable(s.active, func(i, j int) bool {
		return s.active[i].Intensity > s.active[j].Intensity
	})
	if len(s.active) > maxActive {
		s.active = s.active[:maxActive]
	}

	s.sim.Feel(p, intensity)

	if intensity > memorySalienceCutoff {
		s.seq++
		s.memories = append(s.memories, Memory{
			ID:          fmt.Sprintf("mem_%d", s.seq),
			Description: cause,
			Salience:    intensity,
			Timestamp:   s.now(),
			Emotions:    []Primary{p},
		})
	}
}

// Decay advances one idle tick: the body relaxes toward baseline and each
// active emotion fades, dropping out below the floor.
func (s *Store) Decay() {
	s.sim.Relax()

	kept := s.active[:0]
	for _, r := range s.active {
		r.Intensity *= emotionDecayFactor
		if r.Intensity >= emotionDropFloor {
			kept = append(kept, r)
		}
	}
	s.active = kept
}

// Reset returns the store to the neutral baseline, clearing active
// emotions but keeping memories and markers.
func (s *Store) Reset() {
	s.active = nil
	s.sim.Reset()
}

// Active returns a copy of the active emotions, strongest first.
func (s *Store) Active() []Result {
	out := make([]Result, len(s.active))
	copy(out, s.active)
	return out
}

// Dominant returns the strongest active emotion, or false when none.
func (s *Store) Dominant() (Result, bool) {
	if len(s.active) == 0 {
		return Result{}, false
	}
	return s.active[0], true
}

// Body returns the current body state.
func (s *Store) Body() BodyState {
	return s.sim.State()
}

// BackgroundFeelings returns the current derived feeling labels.
func (s *Store) BackgroundFeelings() []string {
	return s.sim.BackgroundFeelings()
}

// Memories returns the recorded memory log, oldest first.
func (s *Store) Memories() []Memory {
	out := make([]Memory, len(s.memories))
	copy(out, s.memories)
	return out
}

// AddMarker records a somatic marker and returns it.
func (s *Store) AddMarker(context, feeling string, strength float64, valence Valence) SomaticMarker {
	s.seq++
	marker := SomaticMarker{
		ID:       fmt.Sprintf("marker_%d", s.seq),
		Context:  context,
		Feeling:  feeling,
		Strength: ClampIntensity(strength),
		Valence:  valence,
		Created:  s.now(),
	}
	s.markers = append(s.markers, marker)
	return marker
}

// Markers returns all recorded somatic markers, oldest first.
func (s *Store) Markers() []SomaticMarker {
	out := make([]SomaticMarker, len(s.markers))
	copy(out, s.markers)
	return out
}

// RecallMarkers returns the markers whose context contains the query,
// case-insensitively, strongest first.
func (s *Store) RecallMarkers(query string) []SomaticMarker {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []SomaticMarker
	for _, m := range s.markers {
		if strings.Contains(strings.ToLower(m.Context), query) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})
	return out
}

package emotion

// BodyState is the simulated physiological vector that modulates voice
// output. Every field stays clamped to its documented range after every
// update: heart rate [60,180], temperature [-1,1], the rest [0,1].
type BodyState struct {
	HeartRate   float64 `json:"heart_rate"`
	Temperature float64 `json:"temperature"`
	Tension     float64 `json:"tension"`
	Energy      float64 `json:"energy"`
	Breathing   float64 `json:"breathing"`
}

// Baseline returns the resting body state.
func Baseline() BodyState {
	return BodyState{
		HeartRate:   72,
		Temperature: 0,
		Tension:     0.2,
		Energy:      0.5,
		Breathing:   0.3,
	}
}

// feelDecay weights the old state against an emotion's target state when a
// feel event lands.
const feelDecay = 0.7

// effectTargets maps each primary emotion to the body state it pulls
// toward. Unlisted fields fall back to the baseline target.
var effectTargets = map[Primary]BodyState{
	Joy:      {HeartRate: 95, Temperature: 0.5, Tension: 0.1, Energy: 0.8, Breathing: 0.4},
	Sadness:  {HeartRate: 65, Temperature: -0.4, Tension: 0.4, Energy: 0.2, Breathing: 0.25},
	Anger:    {HeartRate: 110, Temperature: 0.7, Tension: 0.9, Energy: 0.85, Breathing: 0.7},
	Fear:     {HeartRate: 120, Temperature: -0.5, Tension: 0.85, Energy: 0.7, Breathing: 0.8},
	Disgust:  {HeartRate: 80, Temperature: -0.2, Tension: 0.6, Energy: 0.4, Breathing: 0.4},
	Surprise: {HeartRate: 105, Temperature: 0.2, Tension: 0.5, Energy: 0.75, Breathing: 0.65},
	Neutral:  {HeartRate: 72, Temperature: 0, Tension: 0.2, Energy: 0.5, Breathing: 0.3},
}

// relaxRates pull each field back toward baseline once per interaction.
// Fast-moving fields relax quicker than slow ones.
var relaxRates = struct {
	heartRate, temperature, tension, energy, breathing float64
}{0.95, 0.97, 0.95, 0.98, 0.96}

// Simulator evolves a body state in response to emotion events and idle
// decay. It is not safe for concurrent use; the host serializes calls.
type Simulator struct {
	state BodyState
}

// NewSimulator returns a Simulator at the resting baseline.
func NewSimulator() *Simulator {
	return &Simulator{state: Baseline()}
}

// State returns the current body state.
func (s *Simulator) State() BodyState {
	return s.state
}

// Reset returns the body to baseline.
func (s *Simulator) Reset() {
	s.state = Baseline()
}

// Feel pulls the body toward the emotion's target state, weighted by the
// event intensity.
func (s *Simulator) Feel(p Primary, intensity float64) {
	intensity = ClampIntensity(intensity)
	target, ok := effectTargets[p]
	if !ok {
		target = Baseline()
	}
	w := intensity * (1 - feelDecay)
	s.state = clampBody(BodyState{
		HeartRate:   s.state.HeartRate*feelDecay + target.HeartRate*w,
		Temperature: s.state.Temperature*feelDecay + target.Temperature*w,
		Tension:     s.state.Tension*feelDecay + target.Tension*w,
		Energy:      s.state.Energy*feelDecay + target.Energy*w,
		Breathing:   s.state.Breathing*feelDecay + target.Breathing*w,
	})
}

// Relax advances one idle-decay step toward baseline. Each field moves a
// fixed fraction of its remaining distance, so it converges monotonically
// and never overshoots.
func (s *Simulator) Relax() {
	base := Baseline()
	s.state = clampBody(BodyState{
		HeartRate:   base.HeartRate + (s.state.HeartRate-base.HeartRate)*relaxRates.heartRate,
		Temperature: base.Temperature + (s.state.Temperature-base.Temperature)*relaxRates.temperature,
		Tension:     base.Tension + (s.state.Tension-base.Tension)*relaxRates.tension,
		Energy:      base.Energy + (s.state.Energy-base.Energy)*relaxRates.energy,
		Breathing:   base.Breathing + (s.state.Breathing-base.Breathing)*relaxRates.breathing,
	})
}

// BackgroundFeelings derives coarse feeling labels from fixed thresholds
// on the current body state. When nothing fires it returns ["neutral"].
func (s *Simulator) BackgroundFeelings() []string {
	return FeelingsFor(s.state)
}

// FeelingsFor computes background feeling labels for a body state.
func FeelingsFor(b BodyState) []string {
	var feelings []string
	switch {
	case b.Energy > 0.7:
		feelings = append(feelings, "energized")
	case b.Energy < 0.3:
		feelings = append(feelings, "fatigued")
	}
	switch {
	case b.Tension > 0.6:
		feelings = append(feelings, "tense")
	case b.Tension < 0.2:
		feelings = append(feelings, "relaxed")
	}
	switch {
	case b.Temperature > 0.3:
		feelings = append(feelings, "warm")
	case b.Temperature < -0.3:
		feelings = append(feelings, "cold")
	}
	switch {
	case b.HeartRate > 100:
		feelings = append(feelings, "aroused")
	case b.HeartRate < 65:
		feelings = append(feelings, "calm")
	}
	switch {
	case b.Breathing > 0.6:
		feelings = append(feelings, "breathless")
	case b.Breathing < 0.3:
		feelings = append(feelings, "steady")
	}
	if len(feelings) == 0 {
		return []string{"neutral"}
	}
	return feelings
}

func clampBody(b BodyState) BodyState {
	b.HeartRate = clampRange(b.HeartRate, 60, 180)
	b.Temperature = clampRange(b.Temperature, -1, 1)
	b.Tension = ClampIntensity(b.Tension)
	b.Energy = ClampIntensity(b.Energy)
	b.Breathing = ClampIntensity(b.Breathing)
	return b
}

func clampRange(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

package emotion

import (
	"sort"
	"strings"
	"unicode"
)

// Analyzer scores free text against fixed keyword lists to detect the
// emotions it carries. All methods are total: degenerate input yields an
// empty result, never an error.
type Analyzer struct{}

// NewAnalyzer returns an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// baseMultiplier leaves headroom so intensifiers, exclamation marks, and
// shouting can raise the final intensity before the [0,1] cap.
const baseMultiplier = 0.7

var keywordLists = map[Primary][]string{
	Joy: {
		"happy", "happiness", "joy", "joyful", "glad", "delighted", "excited",
		"thrilled", "wonderful", "great", "love", "amazing", "awesome", "yay",
	},
	Sadness: {
		"sad", "unhappy", "depressed", "miserable", "lonely", "gloomy",
		"heartbroken", "crying", "cry", "grief", "sorrow", "down", "hurt",
	},
	Anger: {
		"angry", "anger", "mad", "furious", "rage", "annoyed", "irritated",
		"outraged", "hate", "frustrated", "livid", "resent",
	},
	Fear: {
		"afraid", "scared", "fear", "terrified", "anxious", "worried",
		"nervous", "panicked", "dread", "frightened", "uneasy",
	},
	Disgust: {
		"disgusted", "disgusting", "gross", "revolting", "nasty", "sickening",
		"repulsive", "vile", "yuck", "ew", "awful",
	},
	Surprise: {
		"surprised", "surprise", "shocked", "astonished", "amazed", "wow",
		"unexpected", "unbelievable", "incredible", "whoa", "stunned",
	},
}

var intensifiers = map[string]bool{
	"very": true, "extremely": true, "so": true, "really": true,
	"incredibly": true, "totally": true, "absolutely": true, "deeply": true,
	"super": true, "utterly": true,
}

var negations = map[string]bool{
	"not": true, "never": true, "no": true, "don't": true, "dont": true,
	"isn't": true, "isnt": true, "can't": true, "cant": true, "won't": true,
	"wont": true, "nothing": true,
}

// Analyze scores text and returns detected emotions sorted by descending
// intensity. Empty or matchless text returns an empty slice.
func (a *Analyzer) Analyze(text string) []Result {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[Primary]int)
	total := 0
	hasIntensifier := false
	hasNegation := false
	for _, tok := range tokens {
		if intensifiers[tok] {
			hasIntensifier = true
		}
		if negations[tok] {
			hasNegation = true
		}
		for _, p := range Primaries {
			if matchesAny(tok, keywordLists[p]) {
				counts[p]++
				total++
			}
		}
	}
	if total == 0 {
		return nil
	}

	multiplier := baseMultiplier
	if hasIntensifier {
		multiplier *= 1.5
	}
	multiplier += exclamationBoost(text)
	multiplier += capsBoost(text)

	scores := make(map[Primary]float64)
	for p, n := range counts {
		scores[p] = ClampIntensity(float64(n) / float64(total) * multiplier)
	}

	// Negation only flips the joy/sadness axis; other emotions keep their
	// literal reading.
	if hasNegation {
		joy, sad := scores[Joy], scores[Sadness]
		delete(scores, Joy)
		delete(scores, Sadness)
		if joy > 0 {
			scores[Sadness] = ClampIntensity(joy * 0.7)
		}
		if sad > 0 {
			scores[Joy] = ClampIntensity(sad * 0.5)
		}
	}

	results := make([]Result, 0, len(scores))
	for _, p := range Primaries {
		if s, ok := scores[p]; ok && s > 0 {
			results = append(results, Result{Type: p, Intensity: s})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Intensity > results[j].Intensity
	})
	return results
}

func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func matchesAny(token string, keywords []string) bool {
	for _, kw := range keywords {
		if token == kw {
			return true
		}
		if len(kw) >= 4 && strings.Contains(token, kw) {
			return true
		}
	}
	return false
}

// exclamationBoost adds 0.1 per exclamation mark, capped at three.
func exclamationBoost(text string) float64 {
	n := strings.Count(text, "!")
	if n > 3 {
		n = 3
	}
	return float64(n) * 0.1
}

// capsBoost adds 0.3 when the text reads as shouting: at least three
// letters and more than 70% of them uppercase.
func capsBoost(text string) float64 {
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters >= 3 && float64(upper) > 0.7*float64(letters) {
		return 0.3
	}
	return 0
}

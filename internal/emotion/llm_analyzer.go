package emotion

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// LLMAnalyzer classifies text emotion with a language model. It refines
// the keyword Analyzer when a model is configured; callers fall back to
// the keyword path when it errors.
type LLMAnalyzer struct {
	model model.LLM
}

// NewLLMAnalyzer returns an LLMAnalyzer.
func NewLLMAnalyzer(m model.LLM) *LLMAnalyzer {
	return &LLMAnalyzer{model: m}
}

const classifyInstruction = `You are an emotion classifier. Reply with exactly one line of the form
"<label> <intensity>", where label is one of: joy, sadness, anger, fear,
disgust, surprise, neutral, and intensity is a number between 0 and 1.
Output nothing else.`

// Analyze returns the dominant emotion the model reads from text.
func (a *LLMAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	if a == nil || a.model == nil {
		return Result{Type: Neutral}, fmt.Errorf("llm analyzer not configured")
	}
	if strings.TrimSpace(text) == "" {
		return Result{Type: Neutral}, nil
	}

	req := &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(classifyInstruction, "system"),
			genai.NewContentFromText(text, "user"),
		},
	}

	seq := a.model.GenerateContent(ctx, req, false)
	var resp *model.LLMResponse
	var err error
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return Result{Type: Neutral}, err
	}

	return parseClassification(extractText(resp)), nil
}

func extractText(resp *model.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.ToLower(strings.TrimSpace(sb.String()))
}

func parseClassification(line string) Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{Type: Neutral}
	}
	label := Normalize(fields[0])
	intensity := 0.5
	if len(fields) > 1 {
		if v, parseErr := strconv.ParseFloat(fields[1], 64); parseErr == nil {
			intensity = ClampIntensity(v)
		}
	}
	if label == Neutral {
		intensity = 0
	}
	return Result{Type: label, Intensity: intensity}
}

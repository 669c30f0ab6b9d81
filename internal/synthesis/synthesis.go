// Package synthesis turns prepared utterances into audio through an
// OpenAI-compatible speech endpoint.
package synthesis

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Request carries one utterance plus the voice direction derived from the
// emotive state.
type Request struct {
	Text string
	// Voice is the provider voice name. Empty selects the default.
	Voice string
	// Instructions carries a natural-language voice description, the way
	// descriptive providers steer delivery.
	Instructions string
	// Speed is a playback multiplier. Zero means provider default.
	Speed float64
}

// Synthesizer produces audio bytes for a request.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// Client synthesizes speech through the OpenAI audio API.
type Client struct {
	client *openai.Client
	model  string
}

const defaultSpeechModel = "gpt-4o-mini-tts"

// NewClient creates a speech client.
func NewClient(apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required for synthesis")
	}
	if modelName == "" {
		modelName = defaultSpeechModel
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &client, model: modelName}, nil
}

// Synthesize renders the request to audio bytes.
func (c *Client) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("synthesis text cannot be empty")
	}

	voice := openai.AudioSpeechNewParamsVoice(req.Voice)
	if req.Voice == "" {
		voice = openai.AudioSpeechNewParamsVoiceAlloy
	}

	params := openai.AudioSpeechNewParams{
		Input: req.Text,
		Model: openai.SpeechModel(c.model),
		Voice: voice,
	}
	if req.Instructions != "" {
		params.Instructions = openai.String(req.Instructions)
	}
	if req.Speed > 0 {
		params.Speed = openai.Float(req.Speed)
	}

	resp, err := c.client.Audio.Speech.New(ctx, params)
	if err != nil {
		slog.Error("failed to call speech API", "error", err.Error())
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close speech response", "error", err.Error())
		}
	}()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech audio: %w", err)
	}
	return audio, nil
}

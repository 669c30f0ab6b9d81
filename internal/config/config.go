// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings. Database and API credentials are
// optional; features that need them stay disabled when absent.
type Config struct {
	Provider            string
	EnableMarkup        bool
	DatabaseURL         string
	GoogleAPIKey        string
	OpenAIAPIKey        string
	LLMModel            string
	EmbeddingModel      string
	SpeechModel         string
	TopK                int
	SimilarityThreshold float64
}

// Load reads env vars and applies defaults.
func Load() Config {
	cfg := Config{
		Provider:       os.Getenv("TTS_PROVIDER"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		EmbeddingModel: os.Getenv("EMBEDDING_MODEL"),
		SpeechModel:    os.Getenv("SPEECH_MODEL"),
	}

	cfg.EnableMarkup = getEnvBool("ENABLE_MARKUP", true)
	cfg.TopK = getEnvInt("TOP_K", 5)
	cfg.SimilarityThreshold = getEnvFloat("SIMILARITY_THRESHOLD", 0.7)

	if cfg.Provider == "" {
		cfg.Provider = "cartesia"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-004"
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = "gpt-4o-mini-tts"
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

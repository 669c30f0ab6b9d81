// Package main is the entry point for the emotive voice daemon. It
// serves the tool API over stdio.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/easeaico/emotive-voice/internal/config"
	"github.com/easeaico/emotive-voice/internal/emotion"
	"github.com/easeaico/emotive-voice/internal/engine"
	"github.com/easeaico/emotive-voice/internal/models"
	"github.com/easeaico/emotive-voice/internal/profile"
	"github.com/easeaico/emotive-voice/internal/synthesis"
	"github.com/easeaico/emotive-voice/internal/toolapi"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	eng, err := engine.New(engine.Config{
		Provider:     cfg.Provider,
		EnableMarkup: cfg.EnableMarkup,
	})
	if err != nil {
		log.Fatalf("failed to initialize engine: %v", err)
	}

	deps := toolapi.Deps{
		Engine:   eng,
		Store:    emotion.NewStore(),
		Analyzer: emotion.NewAnalyzer(),
	}

	// The voice profile store and speech client are optional. Without
	// credentials the daemon still serves analysis and state tools. The
	// pool only opens when the embedder can open too; a store nothing can
	// query would just hold connections.
	if cfg.DatabaseURL != "" && cfg.GoogleAPIKey != "" {
		store, err := profile.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()

		embedder, err := profile.NewGenAIEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
		if err != nil {
			log.Fatalf("failed to create embedder: %v", err)
		}
		deps.Profiles = profile.NewSelector(embedder, store, cfg.TopK, cfg.SimilarityThreshold)
	}

	if cfg.OpenAIAPIKey != "" {
		speech, err := synthesis.NewClient(cfg.OpenAIAPIKey, cfg.SpeechModel)
		if err != nil {
			log.Fatalf("failed to create speech client: %v", err)
		}
		deps.Synthesizer = speech

		if cfg.LLMModel != "" {
			llm, err := models.NewOpenAIModel(cfg.OpenAIAPIKey, cfg.LLMModel)
			if err != nil {
				log.Fatalf("failed to create llm model: %v", err)
			}
			deps.LLMAnalyzer = emotion.NewLLMAnalyzer(llm)
		}
	}

	server := toolapi.NewServer()
	if err := toolapi.RegisterAll(server, deps); err != nil {
		log.Fatalf("failed to register tools: %v", err)
	}

	slog.Info("emotive voice daemon started", "provider", eng.Provider(), "markup", cfg.EnableMarkup)
	if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Fatalf("failed to serve tool api: %v", err)
	}
}

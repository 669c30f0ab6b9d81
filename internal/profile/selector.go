package profile

import (
	"context"
	"fmt"
)

// Selector finds voice profiles by free-text style description.
type Selector struct {
	embedder            Embedder
	repo                Repo
	topK                int
	similarityThreshold float64
}

// NewSelector creates a new Selector.
func NewSelector(embedder Embedder, repo Repo, topK int, threshold float64) *Selector {
	if topK <= 0 {
		topK = 5
	}
	if threshold <= 0 {
		threshold = 0.7
	}
	return &Selector{
		embedder:            embedder,
		repo:                repo,
		topK:                topK,
		similarityThreshold: threshold,
	}
}

// Select returns the profiles for a provider that best match the styled
// description, best first.
func (s *Selector) Select(ctx context.Context, provider, description string) ([]Match, error) {
	if description == "" {
		return nil, nil
	}
	if s.embedder == nil || s.repo == nil {
		return nil, fmt.Errorf("selector not properly configured")
	}

	vec, err := s.embedder.EmbedQuery(ctx, description)
	if err != nil {
		return nil, err
	}

	return s.repo.SearchByStyle(ctx, provider, vec, s.topK, s.similarityThreshold)
}

// List returns every profile stored for a provider.
func (s *Selector) List(ctx context.Context, provider string) ([]Profile, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("selector not properly configured")
	}
	return s.repo.ListByProvider(ctx, provider)
}

// Get returns the profile for a provider speaker, or nil when absent.
func (s *Selector) Get(ctx context.Context, provider, speaker string) (*Profile, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("selector not properly configured")
	}
	return s.repo.GetBySpeaker(ctx, provider, speaker)
}

// Register embeds the profile description and stores the profile.
func (s *Selector) Register(ctx context.Context, p Profile) error {
	if s.embedder == nil || s.repo == nil {
		return fmt.Errorf("selector not properly configured")
	}
	if p.Description != "" && len(p.StyleVector) == 0 {
		vec, err := s.embedder.EmbedDocument(ctx, p.Description)
		if err != nil {
			return fmt.Errorf("failed to embed voice description: %w", err)
		}
		p.StyleVector = vec
	}
	return s.repo.AddProfile(ctx, p)
}

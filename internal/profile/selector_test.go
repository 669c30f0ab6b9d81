package profile

import (
	"context"
	"testing"
)

type fakeEmbedder struct {
	vec  []float32
	docs []string
	err  error
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

func (f *fakeEmbedder) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	f.docs = append(f.docs, text)
	return f.vec, f.err
}

type fakeRepo struct {
	added        []Profile
	matches      []Match
	profiles     []Profile
	lastTopK     int
	lastEmbed    []float32
	lastProvider string
}

func (f *fakeRepo) AddProfile(ctx context.Context, p Profile) error {
	f.added = append(f.added, p)
	return nil
}

func (f *fakeRepo) GetBySpeaker(ctx context.Context, provider, speaker string) (*Profile, error) {
	f.lastProvider = provider
	for _, p := range f.profiles {
		if p.Provider == provider && p.Speaker == speaker {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListByProvider(ctx context.Context, provider string) ([]Profile, error) {
	f.lastProvider = provider
	return f.profiles, nil
}

func (f *fakeRepo) SearchByStyle(ctx context.Context, provider string, embedding []float32, topK int, threshold float64) ([]Match, error) {
	f.lastEmbed = embedding
	f.lastTopK = topK
	return f.matches, nil
}

func TestSelectEmbedsQuery(t *testing.T) {
	repo := &fakeRepo{matches: []Match{
		{Profile: Profile{Speaker: "savannah"}, Similarity: 0.91},
	}}
	embedder := &fakeEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	sel := NewSelector(embedder, repo, 3, 0.7)

	matches, err := sel.Select(context.Background(), "cartesia", "warm, slightly husky narrator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Speaker != "savannah" {
		t.Fatalf("unexpected matches %#v", matches)
	}
	if repo.lastTopK != 3 || len(repo.lastEmbed) != 3 {
		t.Fatalf("search should use the configured topK and query vector")
	}
}

func TestSelectEmptyDescription(t *testing.T) {
	sel := NewSelector(&fakeEmbedder{}, &fakeRepo{}, 3, 0.7)
	matches, err := sel.Select(context.Background(), "cartesia", "")
	if err != nil || matches != nil {
		t.Fatalf("empty description should short-circuit, got %#v, %v", matches, err)
	}
}

func TestNewSelectorDefaults(t *testing.T) {
	sel := NewSelector(&fakeEmbedder{}, &fakeRepo{}, 0, 0)
	if sel.topK != 5 || sel.similarityThreshold != 0.7 {
		t.Fatalf("expected defaults, got topK=%d threshold=%f", sel.topK, sel.similarityThreshold)
	}
}

func TestListAndGet(t *testing.T) {
	repo := &fakeRepo{profiles: []Profile{
		{Speaker: "rachel", Provider: "elevenlabs"},
		{Speaker: "josh", Provider: "elevenlabs"},
	}}
	sel := NewSelector(&fakeEmbedder{}, repo, 3, 0.7)

	profiles, err := sel.List(context.Background(), "elevenlabs")
	if err != nil || len(profiles) != 2 {
		t.Fatalf("unexpected list %#v, %v", profiles, err)
	}
	if repo.lastProvider != "elevenlabs" {
		t.Fatalf("list should scope to the provider, got %q", repo.lastProvider)
	}

	p, err := sel.Get(context.Background(), "elevenlabs", "josh")
	if err != nil || p == nil || p.Speaker != "josh" {
		t.Fatalf("unexpected profile %#v, %v", p, err)
	}
	p, err = sel.Get(context.Background(), "elevenlabs", "nobody")
	if err != nil || p != nil {
		t.Fatalf("missing speaker should return nil, got %#v, %v", p, err)
	}
}

func TestRegisterEmbedsDescription(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{vec: []float32{0.5, 0.5}}
	sel := NewSelector(embedder, repo, 3, 0.7)

	err := sel.Register(context.Background(), Profile{
		Speaker:     "rachel",
		Provider:    "elevenlabs",
		Description: "calm and precise",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.added) != 1 || len(repo.added[0].StyleVector) != 2 {
		t.Fatalf("register should attach the style vector, got %#v", repo.added)
	}
	if len(embedder.docs) != 1 || embedder.docs[0] != "calm and precise" {
		t.Fatalf("description should be embedded as a document, got %#v", embedder.docs)
	}
}

func TestRegisterKeepsExistingVector(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{vec: []float32{9}}
	sel := NewSelector(embedder, repo, 3, 0.7)

	err := sel.Register(context.Background(), Profile{
		Speaker:     "josh",
		Provider:    "elevenlabs",
		Description: "deep",
		StyleVector: []float32{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(embedder.docs) != 0 {
		t.Fatalf("existing vector must not be re-embedded")
	}
	if len(repo.added[0].StyleVector) != 3 {
		t.Fatalf("existing vector should be stored as-is, got %#v", repo.added[0])
	}
}

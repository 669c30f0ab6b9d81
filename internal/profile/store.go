package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// profileModel maps to the voice_profiles table.
type profileModel struct {
	ID          int
	Speaker     string
	Provider    string
	VoiceID     string `gorm:"column:voice_id"`
	Description string
	Emotive     bool
	// StyleVector stores the embedded voice description for similarity search.
	StyleVector *pgvector.Vector `gorm:"type:vector;column:style_vector"`
	CreatedAt   time.Time
}

func (profileModel) TableName() string {
	return "voice_profiles"
}

// Store holds the DB pool and implements Repo against PostgreSQL.
type Store struct {
	db *gorm.DB
}

// NewStore initializes the PostgreSQL pool.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func (s *Store) AddProfile(ctx context.Context, p Profile) error {
	var vector *pgvector.Vector
	if len(p.StyleVector) > 0 {
		v := pgvector.NewVector(p.StyleVector)
		vector = &v
	}
	record := profileModel{
		Speaker:     p.Speaker,
		Provider:    p.Provider,
		VoiceID:     p.VoiceID,
		Description: p.Description,
		Emotive:     p.Emotive,
		StyleVector: vector,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert voice profile: %w", err)
	}
	return nil
}

func (s *Store) GetBySpeaker(ctx context.Context, provider, speaker string) (*Profile, error) {
	var record profileModel
	err := s.db.WithContext(ctx).
		Where("provider = ? AND speaker = ?", provider, speaker).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query voice profile: %w", err)
	}
	p := profileFromModel(record)
	return &p, nil
}

func (s *Store) ListByProvider(ctx context.Context, provider string) ([]Profile, error) {
	var records []profileModel
	if err := s.db.WithContext(ctx).
		Where("provider = ?", provider).
		Order("speaker ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list voice profiles: %w", err)
	}
	results := make([]Profile, 0, len(records))
	for _, record := range records {
		results = append(results, profileFromModel(record))
	}
	return results, nil
}

func (s *Store) SearchByStyle(ctx context.Context, provider string, embedding []float32, topK int, threshold float64) ([]Match, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	// Filter by cosine similarity against the embedded description.
	conditions := "style_vector IS NOT NULL AND 1 - (style_vector <=> $1) > $2"
	args := []any{pgvector.NewVector(embedding), threshold}
	argIndex := 3

	if provider != "" {
		conditions += fmt.Sprintf(" AND provider = $%d", argIndex)
		args = append(args, provider)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, speaker, provider, voice_id, description, emotive, created_at,
		       1 - (style_vector <=> $1) AS similarity
		FROM voice_profiles
		WHERE %s
		ORDER BY similarity DESC
		LIMIT $%d`, conditions, argIndex)

	args = append(args, topK)

	var rows []matchRow
	if err := s.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search voice profiles: %w", err)
	}

	results := make([]Match, 0, len(rows))
	for _, row := range rows {
		results = append(results, matchFromRow(row))
	}
	return results, nil
}

// matchRow is the flat scan target for style search. Scanning needs
// scalar columns only, so the style vector stays out of it.
type matchRow struct {
	ID          int
	Speaker     string
	Provider    string
	VoiceID     string
	Description string
	Emotive     bool
	CreatedAt   time.Time
	Similarity  float64
}

func matchFromRow(row matchRow) Match {
	return Match{
		Profile: Profile{
			ID:          row.ID,
			Speaker:     row.Speaker,
			Provider:    row.Provider,
			VoiceID:     row.VoiceID,
			Description: row.Description,
			Emotive:     row.Emotive,
			CreatedAt:   row.CreatedAt,
		},
		Similarity: row.Similarity,
	}
}

// profileFromModel converts database model to domain struct.
func profileFromModel(model profileModel) Profile {
	var vec []float32
	if model.StyleVector != nil {
		vec = model.StyleVector.Slice()
	}
	return Profile{
		ID:          model.ID,
		Speaker:     model.Speaker,
		Provider:    model.Provider,
		VoiceID:     model.VoiceID,
		Description: model.Description,
		Emotive:     model.Emotive,
		StyleVector: vec,
		CreatedAt:   model.CreatedAt,
	}
}

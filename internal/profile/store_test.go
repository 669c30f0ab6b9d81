package profile

import (
	"testing"
	"time"
)

func TestMatchFromRow(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	row := matchRow{
		ID:          7,
		Speaker:     "savannah",
		Provider:    "cartesia",
		VoiceID:     "a0e99841-438c-4a64-b679-ae501e7d6091",
		Description: "warm narrator",
		Emotive:     true,
		CreatedAt:   created,
		Similarity:  0.91,
	}

	m := matchFromRow(row)
	if m.ID != 7 || m.Speaker != "savannah" || m.Provider != "cartesia" {
		t.Fatalf("unexpected match %#v", m)
	}
	if m.VoiceID != row.VoiceID || m.Description != "warm narrator" || !m.Emotive {
		t.Fatalf("unexpected match %#v", m)
	}
	if m.Similarity != 0.91 || !m.CreatedAt.Equal(created) {
		t.Fatalf("unexpected match %#v", m)
	}
	if m.StyleVector != nil {
		t.Fatalf("search results carry no style vector, got %#v", m.StyleVector)
	}
}

package testutil

import (
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
)

// NewTestCard builds a card with deterministic fields for tests. The offset
// shifts the timestamp so ordering assertions have distinct instants.
func NewTestCard(id, word string, offset time.Duration) domain.Card {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.Card{
		ID:        id,
		Word:      word,
		Sentence:  "I saw a " + word + " yesterday",
		Meaning:   "meaning of " + word,
		URL:       "https://example.com/" + word,
		Timestamp: base.Add(offset),
	}
}

// StrPtr returns a pointer to s, for building partial updates.
func StrPtr(s string) *string { return &s }

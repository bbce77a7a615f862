package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/store"
)

// Store is an in-memory word and settings store with the same contract as
// the Redis one. It backs the test suites and works as a substrate for
// running the daemon without Redis.
type Store struct {
	mu       sync.Mutex
	cards    []domain.Card
	settings *domain.Settings
}

var (
	_ store.WordStore     = (*Store)(nil)
	_ store.SettingsStore = (*Store)(nil)
)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Append assigns a fresh random id and adds the card in insertion order.
func (s *Store) Append(_ context.Context, draft domain.Draft) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.cards = append(s.cards, domain.Card{
		ID:        id,
		Word:      draft.Word,
		Sentence:  draft.Sentence,
		Meaning:   draft.Meaning,
		URL:       draft.URL,
		Timestamp: draft.Timestamp,
	})
	return id, nil
}

// List returns a copy of the collection in storage order.
func (s *Store) List(_ context.Context) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]domain.Card, len(s.cards))
	copy(cards, s.cards)
	return cards, nil
}

// Update merges the given fields into the card with that id.
func (s *Store) Update(_ context.Context, id string, upd domain.Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i] = s.cards[i].Apply(upd)
			return nil
		}
	}
	return store.ErrNotFound
}

// Delete removes the card with that id; absent ids are a no-op.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cards[:0]
	for _, card := range s.cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}
	s.cards = kept
	return nil
}

// Clear empties the collection.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = nil
	return nil
}

// GetSettings returns the stored preference or the default.
func (s *Store) GetSettings(_ context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return s.settings.Normalized(), nil
}

// SaveSettings replaces the stored preference.
func (s *Store) SaveSettings(_ context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = &settings
	return nil
}

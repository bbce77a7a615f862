package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/store"
)

// Store implements the word and settings stores on Redis. The card
// collection lives under one key as a JSON array, so Append, Update and
// Delete are read-then-write pairs without isolation against a concurrent
// writer in another context. That race is an accepted limitation of the
// single-key layout, not something this layer tries to fix.
type Store struct {
	client *redis.Client
}

var (
	_ store.WordStore     = (*Store)(nil)
	_ store.SettingsStore = (*Store)(nil)
)

// NewStore creates a Redis-backed store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Append assigns a fresh random id, adds the card to the end of the
// collection and returns the id. Random tokens instead of wall-clock ids:
// two rapid saves must never collide and silently overwrite each other.
func (s *Store) Append(ctx context.Context, draft domain.Draft) (string, error) {
	cards, err := s.readAll(ctx)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	cards = append(cards, domain.Card{
		ID:        id,
		Word:      draft.Word,
		Sentence:  draft.Sentence,
		Meaning:   draft.Meaning,
		URL:       draft.URL,
		Timestamp: draft.Timestamp,
	})

	if err := s.writeAll(ctx, cards); err != nil {
		return "", err
	}
	return id, nil
}

// List returns the full collection in storage order.
func (s *Store) List(ctx context.Context) ([]domain.Card, error) {
	return s.readAll(ctx)
}

// Update merges the given fields into the card with that id. Returns
// store.ErrNotFound when the id is absent; it never creates a record.
func (s *Store) Update(ctx context.Context, id string, upd domain.Update) error {
	cards, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range cards {
		if cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return store.ErrNotFound
	}

	cards[idx] = cards[idx].Apply(upd)
	return s.writeAll(ctx, cards)
}

// Delete removes the card with that id if present. An absent id is a
// successful no-op, so deletes are idempotent.
func (s *Store) Delete(ctx context.Context, id string) error {
	cards, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	kept := cards[:0]
	for _, card := range cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}

	return s.writeAll(ctx, kept)
}

// Clear replaces the collection with an empty one.
func (s *Store) Clear(ctx context.Context) error {
	return s.writeAll(ctx, []domain.Card{})
}

func (s *Store) readAll(ctx context.Context) ([]domain.Card, error) {
	data, err := s.client.Get(ctx, KeyWords).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Card{}, nil
		}
		return nil, fmt.Errorf("failed to read word collection: %w", err)
	}

	var cards []domain.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode word collection: %w", err)
	}
	return cards, nil
}

func (s *Store) writeAll(ctx context.Context, cards []domain.Card) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to encode word collection: %w", err)
	}

	if err := s.client.Set(ctx, KeyWords, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write word collection: %w", err)
	}
	return nil
}

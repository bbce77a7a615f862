package store

import (
	"context"
	"errors"

	"github.com/befoot1242/wordbook/internal/domain"
)

// ErrNotFound signals that an update targeted an id with no record behind
// it. It is surfaced distinctly so callers can say "word not found" instead
// of a generic storage error. Delete of an absent id is NOT an error.
var ErrNotFound = errors.New("word not found")

// WordStore is the durable card collection. The whole collection is a
// single value in the substrate, so Append, Update and Delete are each a
// read-then-write pair with no isolation against a concurrent writer in
// another context. Accepted limitation: callers must not assume two
// concurrent writes are serialized.
type WordStore interface {
	// Append assigns a fresh unique id, stores the card and returns the id.
	Append(ctx context.Context, draft domain.Draft) (string, error)

	// List returns the full collection in storage (insertion) order.
	// An empty collection yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Card, error)

	// Update merges the given fields into the record with that id,
	// leaving everything else untouched. Returns ErrNotFound when no
	// record has the id; it never creates one.
	Update(ctx context.Context, id string, upd domain.Update) error

	// Delete removes the record with that id. Absent ids are a no-op.
	Delete(ctx context.Context, id string) error

	// Clear replaces the collection with empty.
	Clear(ctx context.Context) error
}

// SettingsStore persists the trigger-mode preference in the synced
// namespace, separate from the card collection.
type SettingsStore interface {
	// GetSettings returns the stored preference, or the default when
	// nothing has been written yet.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// SaveSettings replaces the stored preference.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// Package manage implements the data rules of the management surface: a
// transient local copy of the collection, sorted newest first, searched in
// memory, edited in place and exported as CSV.
package manage

import (
	"context"
	"io"
	"strings"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/export"
)

// Gateway is the slice of the bridge the management surface needs.
type Gateway interface {
	List(ctx context.Context) ([]domain.Card, error)
	Update(ctx context.Context, id string, upd domain.Update) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// List is the management view model. It holds a transient copy fetched per
// load; a concurrent writer in another context is not reflected until the
// next Load.
type List struct {
	gateway Gateway

	all      []domain.Card
	filtered []domain.Card
	term     string
}

// NewList creates an empty model over the given gateway.
func NewList(gw Gateway) *List {
	return &List{gateway: gw}
}

// Load fetches the collection and sorts it newest first for display. The
// current search term, if any, is re-applied to the fresh copy.
func (l *List) Load(ctx context.Context) error {
	cards, err := l.gateway.List(ctx)
	if err != nil {
		return err
	}
	domain.SortNewestFirst(cards)
	l.all = cards
	l.applyFilter()
	return nil
}

// Search filters the local copy case-insensitively across word, meaning and
// sentence. It never re-queries the store; an empty term restores the full
// list in its current sort order.
func (l *List) Search(term string) {
	l.term = term
	l.applyFilter()
}

// All returns the full local copy, newest first.
func (l *List) All() []domain.Card { return l.all }

// Filtered returns the cards matching the current search term.
func (l *List) Filtered() []domain.Card { return l.filtered }

// Count returns the size of the full collection, for the stats display.
func (l *List) Count() int { return len(l.all) }

// SaveEdit trims the edited fields, rejects an empty word before any
// gateway call, updates the record and merges the change into the local
// copies without a reload. A NotFound or storage failure leaves the local
// copies untouched so the edit form can stay open.
func (l *List) SaveEdit(ctx context.Context, id, word, meaning, sentence string) error {
	word = strings.TrimSpace(word)
	meaning = strings.TrimSpace(meaning)
	sentence = strings.TrimSpace(sentence)

	if word == "" {
		return domain.ErrEmptyWord
	}

	upd := domain.Update{Word: &word, Meaning: &meaning, Sentence: &sentence}
	if err := l.gateway.Update(ctx, id, upd); err != nil {
		return err
	}

	for i := range l.all {
		if l.all[i].ID == id {
			l.all[i] = l.all[i].Apply(upd)
		}
	}
	for i := range l.filtered {
		if l.filtered[i].ID == id {
			l.filtered[i] = l.filtered[i].Apply(upd)
		}
	}
	return nil
}

// Remove deletes the record and drops it from both local lists. The caller
// is responsible for asking the user to confirm first.
func (l *List) Remove(ctx context.Context, id string) error {
	if err := l.gateway.Delete(ctx, id); err != nil {
		return err
	}
	l.all = withoutID(l.all, id)
	l.filtered = withoutID(l.filtered, id)
	return nil
}

// ClearAll empties the store and both local lists. The caller asks for
// confirmation first.
func (l *List) ClearAll(ctx context.Context) error {
	if err := l.gateway.Clear(ctx); err != nil {
		return err
	}
	l.all = nil
	l.filtered = nil
	return nil
}

// ExportCSV writes the full, unfiltered local list as CSV. The current
// search term never narrows an export.
func (l *List) ExportCSV(w io.Writer) error {
	return export.WriteCSV(w, l.all)
}

func (l *List) applyFilter() {
	if l.term == "" {
		l.filtered = make([]domain.Card, len(l.all))
		copy(l.filtered, l.all)
		return
	}
	l.filtered = l.filtered[:0]
	for _, card := range l.all {
		if card.Matches(l.term) {
			l.filtered = append(l.filtered, card)
		}
	}
}

func withoutID(cards []domain.Card, id string) []domain.Card {
	kept := cards[:0]
	for _, card := range cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}
	return kept
}

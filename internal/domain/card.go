package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrEmptyWord rejects a card whose word is blank. It is raised before any
// store call so an empty word is never persisted.
var ErrEmptyWord = errors.New("word is required")

// Card is one persisted wordbook entry.
//
// ID and Timestamp are assigned at creation time and never change afterwards;
// edits replace only Word, Meaning and Sentence.
type Card struct {
	// ID is the opaque unique identifier assigned by the store.
	ID string `json:"id"`

	// Word is the captured term. Never empty once persisted.
	Word string `json:"word"`

	// Sentence is the surrounding context the word was captured in.
	// May be empty.
	Sentence string `json:"sentence"`

	// Meaning is an optional user annotation.
	Meaning string `json:"meaning"`

	// URL is the address of the page the word was captured from.
	URL string `json:"url"`

	// Timestamp is the creation instant. Immutable after creation.
	Timestamp time.Time `json:"timestamp"`
}

// Draft is a card before the store has assigned its id.
type Draft struct {
	Word      string    `json:"word"`
	Sentence  string    `json:"sentence"`
	Meaning   string    `json:"meaning"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

// Trimmed returns a copy of the draft with whitespace stripped from the
// user-editable fields.
func (d Draft) Trimmed() Draft {
	d.Word = strings.TrimSpace(d.Word)
	d.Sentence = strings.TrimSpace(d.Sentence)
	d.Meaning = strings.TrimSpace(d.Meaning)
	return d
}

// Validate checks the draft against the persistence invariants.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Word) == "" {
		return ErrEmptyWord
	}
	return nil
}

// Update carries the fields an edit may replace. Nil fields are left
// untouched. ID and Timestamp are not replaceable.
type Update struct {
	Word     *string `json:"word,omitempty"`
	Meaning  *string `json:"meaning,omitempty"`
	Sentence *string `json:"sentence,omitempty"`
}

// Validate rejects an update that would blank out the word.
func (u Update) Validate() error {
	if u.Word != nil && strings.TrimSpace(*u.Word) == "" {
		return ErrEmptyWord
	}
	return nil
}

// Apply merges the update into the card and returns the result.
func (c Card) Apply(u Update) Card {
	if u.Word != nil {
		c.Word = *u.Word
	}
	if u.Meaning != nil {
		c.Meaning = *u.Meaning
	}
	if u.Sentence != nil {
		c.Sentence = *u.Sentence
	}
	return c
}

// SortNewestFirst orders cards by timestamp descending, the order every
// read surface displays them in. Storage order itself stays insertion order.
func SortNewestFirst(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Timestamp.After(cards[j].Timestamp)
	})
}

// Matches reports whether the card matches a case-insensitive search term
// across word, meaning and sentence. An empty term matches everything.
func (c Card) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Word), term) ||
		strings.Contains(strings.ToLower(c.Meaning), term) ||
		strings.Contains(strings.ToLower(c.Sentence), term)
}

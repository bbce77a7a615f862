package capture

import (
	"context"
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
)

// Saver is the slice of the gateway bridge the capture form needs.
type Saver interface {
	Save(ctx context.Context, draft domain.Draft) (string, error)
}

// Form holds the user-editable candidate card while the capture popup is
// open. It is seeded with the captured word and sentence and an empty
// meaning, all of which the user may edit before submitting.
type Form struct {
	Word     string
	Sentence string
	Meaning  string
}

// NewForm seeds a form the way the popup opens it.
func NewForm(word, sentence string) *Form {
	return &Form{
		Word:     word,
		Sentence: sentence,
	}
}

// Submit trims the fields and saves the card through the gateway. An empty
// word is rejected with domain.ErrEmptyWord before any gateway call is
// made. On success the returned id belongs to the freshly stored card and
// the caller closes the form; on any error the form stays open so the user
// can retry manually.
func (f *Form) Submit(ctx context.Context, saver Saver, pageURL string, now time.Time) (string, error) {
	draft := domain.Draft{
		Word:      f.Word,
		Sentence:  f.Sentence,
		Meaning:   f.Meaning,
		URL:       pageURL,
		Timestamp: now,
	}.Trimmed()

	if err := draft.Validate(); err != nil {
		return "", err
	}
	return saver.Save(ctx, draft)
}

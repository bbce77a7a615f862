package yamlbook

import (
	"fmt"
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
)

// Mapper converts seed entries to domain.Draft values
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapDrafts converts a SeedConfig to []domain.Draft. Entries without a
// word are skipped; a registered timestamp that does not parse falls
// back to now.
func (m *Mapper) MapDrafts(config SeedConfig, now time.Time) ([]domain.Draft, error) {
	var drafts []domain.Draft

	for _, props := range config.Words {
		draft := domain.Draft{
			Word:      props.Word,
			Meaning:   props.Meaning,
			Sentence:  props.Sentence,
			URL:       props.URL,
			Timestamp: now,
		}

		draft = draft.Trimmed()
		if err := draft.Validate(); err != nil {
			continue
		}

		if props.Registered != "" {
			if ts, err := time.Parse(time.RFC3339, props.Registered); err == nil {
				draft.Timestamp = ts
			}
		}

		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("no valid words found in seed file")
	}

	return drafts, nil
}

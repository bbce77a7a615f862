package yamlbook

import (
	"context"
	"fmt"
	"time"

	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/store"
)

// Seeder imports a yaml seed file into the word store on startup.
// Entries already present (same word and url) are skipped so repeated
// restarts never duplicate cards.
type Seeder struct {
	loader *Loader
	mapper *Mapper
	words  store.WordStore
	logger logger.Logger
}

// NewSeeder creates a seeder for the given seed file path
func NewSeeder(filePath string, words store.WordStore, log logger.Logger) *Seeder {
	return &Seeder{
		loader: NewLoader(filePath),
		mapper: NewMapper(),
		words:  words,
		logger: log,
	}
}

// Import loads the seed file and appends the new entries. It returns the
// number of cards actually added.
func (s *Seeder) Import(ctx context.Context) (int, error) {
	config, err := s.loader.Load()
	if err != nil {
		return 0, err
	}

	drafts, err := s.mapper.MapDrafts(config, time.Now())
	if err != nil {
		return 0, err
	}

	existing, err := s.words.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list existing words: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, card := range existing {
		seen[card.Word+"\x00"+card.URL] = struct{}{}
	}

	added := 0
	for _, draft := range drafts {
		key := draft.Word + "\x00" + draft.URL
		if _, ok := seen[key]; ok {
			continue
		}
		if _, err := s.words.Append(ctx, draft); err != nil {
			return added, fmt.Errorf("failed to append seed word %q: %w", draft.Word, err)
		}
		seen[key] = struct{}{}
		added++
	}

	s.logger.Info("seed import finished",
		logger.Int("entries", len(drafts)),
		logger.Int("added", added),
	)

	return added, nil
}

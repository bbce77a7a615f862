package yamlbook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/store/memory"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordbook.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create seed file: %v", err)
	}
	return path
}

func TestSeederImport(t *testing.T) {
	path := writeSeedFile(t, `---
words:
  - word: ephemeral
    url: https://example.com
  - word: cat
    meaning: ねこ
`)

	st := memory.NewStore()
	seeder := NewSeeder(path, st, logger.New("error", true))

	added, err := seeder.Import(context.Background())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if added != 2 {
		t.Fatalf("Import() added = %d, want 2", added)
	}

	cards, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("store has %d cards, want 2", len(cards))
	}
}

func TestSeederImportSkipsExisting(t *testing.T) {
	path := writeSeedFile(t, `---
words:
  - word: ephemeral
    url: https://example.com
  - word: ephemeral
    url: https://other.example.com
`)

	st := memory.NewStore()
	seeder := NewSeeder(path, st, logger.New("error", true))

	if _, err := seeder.Import(context.Background()); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}
	added, err := seeder.Import(context.Background())
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	if added != 0 {
		t.Fatalf("second Import() added = %d, want 0", added)
	}

	cards, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("store has %d cards after re-import, want 2", len(cards))
	}
}

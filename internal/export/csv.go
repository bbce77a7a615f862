// Package export renders the card collection as a CSV file compatible with
// spreadsheet tools: UTF-8 with a byte-order marker, every field quoted.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
)

// Header is the fixed column order: word, meaning, sentence, URL,
// registered-date.
var Header = []string{"単語", "意味", "文章", "URL", "登録日時"}

// bom makes spreadsheet applications detect UTF-8.
const bom = "\ufeff"

// WriteCSV writes the cards in the given order. Every field is wrapped in
// double quotes with embedded quotes doubled, so commas, quotes and
// newlines inside a sentence survive a standard CSV reader round trip.
func WriteCSV(w io.Writer, cards []domain.Card) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	if err := writeRow(w, Header); err != nil {
		return err
	}

	for _, card := range cards {
		row := []string{
			card.Word,
			card.Meaning,
			card.Sentence,
			card.URL,
			FormatDate(card.Timestamp),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// FormatDate renders the registered-date column and the list display date:
// month/day hour:minute, without zero-padding the date part.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d %02d:%02d", int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// Filename returns the dated download name, ex. 単語帳_2026-08-31.csv.
func Filename(label string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", label, now.Format("2006-01-02"))
}

package domain

import (
	"strings"
	"testing"
)

func TestTrimSelection(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{
			name:     "plain word",
			raw:      "cat",
			expected: "cat",
			ok:       true,
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  serendipity \n",
			expected: "serendipity",
			ok:       true,
		},
		{
			name: "empty selection rejected",
			raw:  "",
			ok:   false,
		},
		{
			name: "whitespace-only selection rejected",
			raw:  "   \t ",
			ok:   false,
		},
		{
			name: "selection at the limit rejected",
			raw:  strings.Repeat("a", 100),
			ok:   false,
		},
		{
			name: "huge selection rejected",
			raw:  strings.Repeat("x", 5000),
			ok:   false,
		},
		{
			name:     "just under the limit accepted",
			raw:      strings.Repeat("a", 99),
			expected: strings.Repeat("a", 99),
			ok:       true,
		},
		{
			name:     "multibyte runes counted as runes not bytes",
			raw:      strings.Repeat("語", 99),
			expected: strings.Repeat("語", 99),
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := TrimSelection(tt.raw)
			if ok != tt.ok {
				t.Fatalf("TrimSelection(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && text != tt.expected {
				t.Errorf("TrimSelection(%q) = %q, want %q", tt.raw, text, tt.expected)
			}
		})
	}
}

func TestSentenceContext(t *testing.T) {
	tests := []struct {
		name      string
		enclosing string
		selected  string
		expected  string
	}{
		{
			name:      "first matching sentence trimmed and terminator-free",
			enclosing: "I saw a cat. It ran fast.",
			selected:  "cat",
			expected:  "I saw a cat",
		},
		{
			name:      "match in a later sentence",
			enclosing: "I saw a cat. It ran fast.",
			selected:  "ran",
			expected:  "It ran fast",
		},
		{
			name:      "full-width japanese terminators",
			enclosing: "昨日は雨だった。今日は晴れです！散歩しよう？",
			selected:  "晴れ",
			expected:  "今日は晴れです",
		},
		{
			name:      "exclamation and question marks",
			enclosing: "Stop right there! Who goes there? Nobody.",
			selected:  "goes",
			expected:  "Who goes there",
		},
		{
			name:      "selection spanning a terminator falls back with ellipsis",
			enclosing: "I saw a cat. It ran fast.",
			selected:  "cat. It",
			expected:  "I saw a cat. It ran fast....",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SentenceContext(tt.enclosing, tt.selected)
			if got != tt.expected {
				t.Errorf("SentenceContext() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSentenceContextFallbackTruncates(t *testing.T) {
	long := strings.Repeat("あ", 300)
	got := SentenceContext(long, "not present")

	want := strings.Repeat("あ", 200) + "..."
	if got != want {
		t.Errorf("fallback = %d runes, want 200 runes plus ellipsis", len([]rune(got))-3)
	}
}

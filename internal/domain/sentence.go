package domain

import "strings"

const (
	// MaxSelectionRunes is the exclusive upper bound on a captured
	// selection. Anything this long or longer is treated as accidental.
	MaxSelectionRunes = 100

	// contextFallbackRunes caps the fallback context when no single
	// sentence contains the selection.
	contextFallbackRunes = 200
)

// sentenceTerminators covers ASCII sentence punctuation and the full-width
// East-Asian counterparts.
const sentenceTerminators = ".!?。！？"

// TrimSelection normalizes a raw selection and reports whether it is worth
// capturing. Empty selections and selections of MaxSelectionRunes or more
// are rejected.
func TrimSelection(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	n := len([]rune(text))
	if n == 0 || n >= MaxSelectionRunes {
		return "", false
	}
	return text, true
}

// SentenceContext derives the sentence surrounding a selection from the text
// of its enclosing node. The text is split on sentence terminators and the
// first segment containing the selection wins. If no segment contains it,
// for example when the selection spans a terminator, the first 200 runes of
// the enclosing text are returned with an ellipsis marker.
func SentenceContext(enclosing, selected string) string {
	for _, segment := range splitSentences(enclosing) {
		if strings.Contains(segment, selected) {
			return strings.TrimSpace(segment)
		}
	}

	runes := []rune(enclosing)
	if len(runes) > contextFallbackRunes {
		runes = runes[:contextFallbackRunes]
	}
	return string(runes) + "..."
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(sentenceTerminators, r)
	})
}

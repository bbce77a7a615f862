// Package capture implements the page-side capture pipeline: it observes
// selection gestures, derives the enclosing-sentence context and opens the
// capture form once the configured trigger gesture confirms intent.
package capture

import (
	"sync"
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
)

// PrimaryButton is the mouse button that confirms a click-mode capture.
const PrimaryButton = 0

// DefaultSettleDelay is how long a selection-mode capture waits before
// opening the form, letting the native selection highlight settle first.
const DefaultSettleDelay = 100 * time.Millisecond

// Rect is the bounding-box snapshot of a selection range in page
// coordinates, kept for click-mode hit testing after the selection gesture.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Contains reports whether the point lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Selection is one selection-changed signal from the host page.
type Selection struct {
	// Text is the raw selected text, untrimmed.
	Text string

	// Enclosing is the text content of the node enclosing the range,
	// the material sentence-context derivation works on.
	Enclosing string

	// Bounds is the bounding box of the range.
	Bounds Rect
}

type pendingSelection struct {
	text      string
	enclosing string
	bounds    Rect
}

// FormOpener renders the capture form seeded with the candidate word and
// sentence. Opening replaces any form already on screen.
type FormOpener interface {
	OpenForm(word, sentence string)
}

// Session owns all capture state for one page context: the current trigger
// mode, the pending selection and whether a form is open. Handlers mutate
// the session they were given instead of package globals, so two pages
// never share capture state.
type Session struct {
	mu          sync.Mutex
	mode        domain.TriggerMode
	pending     *pendingSelection
	formOpen    bool
	opener      FormOpener
	settleDelay time.Duration
	settleTimer *time.Timer
}

// Option adjusts session construction.
type Option func(*Session)

// WithSettleDelay overrides the selection-mode settle delay. Zero opens the
// form synchronously.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Session) { s.settleDelay = d }
}

// NewSession creates a session with the given startup settings.
func NewSession(settings domain.Settings, opener FormOpener, opts ...Option) *Session {
	s := &Session{
		mode:        settings.Normalized().TriggerMode,
		opener:      opener,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplySettings updates the trigger mode. Called by the settings watcher
// when a change notification arrives.
func (s *Session) ApplySettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = settings.Normalized().TriggerMode
}

// Mode returns the current trigger mode.
func (s *Session) Mode() domain.TriggerMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Pending returns the trimmed pending selection text, if any.
func (s *Session) Pending() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return "", false
	}
	return s.pending.text, true
}

// FormOpen reports whether a capture form is currently on screen.
func (s *Session) FormOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formOpen
}

// HandleSelection processes a selection-changed signal. Empty or oversized
// selections clear any pending state. In selection mode a valid selection
// opens the form after the settle delay; in click and key mode it stays
// pending until the confirming gesture arrives.
func (s *Session) HandleSelection(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelSettleLocked()

	text, ok := domain.TrimSelection(sel.Text)
	if !ok {
		s.pending = nil
		return
	}

	s.pending = &pendingSelection{
		text:      text,
		enclosing: sel.Enclosing,
		bounds:    sel.Bounds,
	}

	if s.mode != domain.TriggerSelection {
		return
	}

	if s.settleDelay <= 0 {
		s.openFormLocked()
		return
	}
	s.settleTimer = time.AfterFunc(s.settleDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.pending != nil {
			s.openFormLocked()
		}
	})
}

// HandleMouseDown processes a button press. A press outside an open form
// closes it. In click mode, a primary-button press inside the pending
// selection's bounding box opens the form.
func (s *Session) HandleMouseDown(x, y float64, button int, insideForm bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.formOpen {
		if !insideForm {
			s.formOpen = false
		}
		return
	}

	if s.pending == nil || s.mode != domain.TriggerClick || button != PrimaryButton {
		return
	}
	if s.pending.bounds.Contains(x, y) {
		s.openFormLocked()
	}
}

// HandleKey processes a key press. Escape closes an open form; Enter opens
// it in key mode while a selection is pending.
func (s *Session) HandleKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == "Escape" {
		s.formOpen = false
		return
	}
	if key == "Enter" && s.pending != nil && s.mode == domain.TriggerKey {
		s.openFormLocked()
	}
}

// CloseForm marks the form closed, after a successful submit or an explicit
// cancel.
func (s *Session) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formOpen = false
}

func (s *Session) openFormLocked() {
	p := s.pending
	sentence := domain.SentenceContext(p.enclosing, p.text)
	s.formOpen = true
	if s.opener != nil {
		s.opener.OpenForm(p.text, sentence)
	}
}

func (s *Session) cancelSettleLocked() {
	if s.settleTimer != nil {
		s.settleTimer.Stop()
		s.settleTimer = nil
	}
}

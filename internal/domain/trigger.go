package domain

// TriggerMode is the user gesture that confirms intent to open the capture
// form once a selection is pending.
type TriggerMode string

const (
	// TriggerSelection opens the form as soon as text is selected.
	TriggerSelection TriggerMode = "selection"

	// TriggerClick waits for a primary-button press inside the selection.
	TriggerClick TriggerMode = "click"

	// TriggerKey waits for an Enter press while a selection is pending.
	TriggerKey TriggerMode = "key"
)

// Valid reports whether the mode is one of the known gestures.
func (m TriggerMode) Valid() bool {
	switch m {
	case TriggerSelection, TriggerClick, TriggerKey:
		return true
	}
	return false
}

// Settings is the user preference read by capture sessions and written by
// the settings surface.
type Settings struct {
	TriggerMode TriggerMode `json:"triggerMode"`
}

// DefaultSettings returns the out-of-the-box preference.
func DefaultSettings() Settings {
	return Settings{TriggerMode: TriggerSelection}
}

// Normalized replaces an unknown or empty mode with the default.
func (s Settings) Normalized() Settings {
	if !s.TriggerMode.Valid() {
		s.TriggerMode = TriggerSelection
	}
	return s
}

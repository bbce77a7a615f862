package notify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/logger"
)

type recordingHandler struct {
	applied []domain.Settings
}

func (r *recordingHandler) ApplySettings(s domain.Settings) {
	r.applied = append(r.applied, s)
}

func testWatcher() (*Watcher, *recordingHandler) {
	w := NewWatcher(nil, logger.New("error", true))
	h := &recordingHandler{}
	w.Register(h)
	return w, h
}

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		Action:   ActionSettingsChanged,
		Settings: domain.Settings{TriggerMode: domain.TriggerKey},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"settingsChanged","settings":{"triggerMode":"key"}}`, string(data))

	var decoded Message
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, msg, decoded)
}

func TestDispatchForwardsSettings(t *testing.T) {
	w, h := testWatcher()

	w.dispatch([]byte(`{"action":"settingsChanged","settings":{"triggerMode":"click"}}`))

	require.Len(t, h.applied, 1)
	assert.Equal(t, domain.TriggerClick, h.applied[0].TriggerMode)
}

func TestDispatchNormalizesUnknownMode(t *testing.T) {
	w, h := testWatcher()

	w.dispatch([]byte(`{"action":"settingsChanged","settings":{"triggerMode":"hover"}}`))

	require.Len(t, h.applied, 1)
	assert.Equal(t, domain.TriggerSelection, h.applied[0].TriggerMode)
}

func TestDispatchIgnoresUnknownActionsAndGarbage(t *testing.T) {
	w, h := testWatcher()

	w.dispatch([]byte(`{"action":"somethingElse","settings":{"triggerMode":"click"}}`))
	w.dispatch([]byte(`not json at all`))

	assert.Empty(t, h.applied)
}

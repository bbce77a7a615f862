// Package notify propagates settings changes from the settings surface to
// every capture context. Delivery is broadcast, fire-and-forget: contexts
// that are closed or not listening are simply missed, and publish failures
// are swallowed after logging.
package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/logger"
	redisstore "github.com/befoot1242/wordbook/internal/store/redis"
)

// ActionSettingsChanged identifies a settings change broadcast. Receivers
// ignore messages whose action they do not recognize.
const ActionSettingsChanged = "settingsChanged"

// Message is the broadcast envelope.
type Message struct {
	Action   string          `json:"action"`
	Settings domain.Settings `json:"settings"`
}

// Publisher is what the settings write path needs: announce a change, never
// fail the caller over it.
type Publisher interface {
	SettingsChanged(ctx context.Context, settings domain.Settings)
}

// Broadcaster publishes settings changes on the shared channel.
type Broadcaster struct {
	client *redis.Client
	logger logger.Logger
}

var _ Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a broadcaster on the given Redis client.
func NewBroadcaster(client *redis.Client, log logger.Logger) *Broadcaster {
	return &Broadcaster{
		client: client,
		logger: log,
	}
}

// SettingsChanged announces the new settings to all listening contexts.
// Failures are logged and dropped: a settings write must not fail because
// some context could not be notified.
func (b *Broadcaster) SettingsChanged(ctx context.Context, settings domain.Settings) {
	data, err := json.Marshal(Message{
		Action:   ActionSettingsChanged,
		Settings: settings,
	})
	if err != nil {
		b.logger.Warn("failed to encode settings notification", logger.Error(err))
		return
	}

	if err := b.client.Publish(ctx, redisstore.ChannelSettingsChanged, data).Err(); err != nil {
		b.logger.Warn("failed to broadcast settings change", logger.Error(err))
		return
	}

	b.logger.Debug("settings change broadcast",
		logger.String("trigger_mode", string(settings.TriggerMode)))
}

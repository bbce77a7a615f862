package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/logger"
	redisstore "github.com/befoot1242/wordbook/internal/store/redis"
)

// SettingsHandler receives the new settings after a change broadcast.
type SettingsHandler interface {
	ApplySettings(settings domain.Settings)
}

// Watcher subscribes to the settings channel and forwards changes to every
// registered handler. One watcher serves a whole capture context.
type Watcher struct {
	client *redis.Client
	logger logger.Logger

	mu       sync.Mutex
	handlers []SettingsHandler

	sub    *redis.PubSub
	stopCh chan struct{}
}

// NewWatcher creates a watcher on the given Redis client.
func NewWatcher(client *redis.Client, log logger.Logger) *Watcher {
	return &Watcher{
		client: client,
		logger: log,
		stopCh: make(chan struct{}),
	}
}

// Register adds a handler. Safe to call before or after Start.
func (w *Watcher) Register(h SettingsHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Start subscribes and begins forwarding notifications.
func (w *Watcher) Start(ctx context.Context) error {
	w.sub = w.client.Subscribe(ctx, redisstore.ChannelSettingsChanged)

	// Force the subscription to be established before returning.
	if _, err := w.sub.Receive(ctx); err != nil {
		return err
	}

	ch := w.sub.Channel()
	go func() {
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				w.dispatch([]byte(msg.Payload))
			case <-w.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	w.logger.Info("settings watcher started")
	return nil
}

// Stop unsubscribes and stops forwarding.
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.sub != nil {
		_ = w.sub.Close()
	}
}

// dispatch decodes one broadcast payload and fans it out. Unknown actions
// and undecodable payloads are ignored, matching the contract that
// non-listening contexts just drop notifications.
func (w *Watcher) dispatch(payload []byte) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		w.logger.Debug("ignoring malformed settings notification", logger.Error(err))
		return
	}
	if msg.Action != ActionSettingsChanged {
		return
	}

	settings := msg.Settings.Normalized()

	w.mu.Lock()
	handlers := make([]SettingsHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, h := range handlers {
		h.ApplySettings(settings)
	}
}

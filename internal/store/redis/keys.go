package redis

const (
	// KeyWords holds the whole card collection as a single JSON array
	// value. The collection is deliberately one key: storage order is
	// insertion order and every operation rewrites the full list.
	KeyWords = "wordbook:local:words"

	// KeySettings holds the trigger-mode preference. The sync prefix
	// marks the namespace that follows the user across installs, kept
	// apart from the per-install local namespace.
	KeySettings = "wordbook:sync:settings"

	// ChannelSettingsChanged is the pub/sub channel settings change
	// notifications are broadcast on.
	ChannelSettingsChanged = "wordbook:sync:settings:changed"
)

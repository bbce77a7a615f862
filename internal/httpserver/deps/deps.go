package deps

import (
	"context"
	"time"

	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/notify"
	"github.com/befoot1242/wordbook/internal/store"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time          // for testing, defaults to time.Now
	AllowedHosts   []string                  // Host headers allowed to access the server
	AllowedOrigins []string                  // Origins allowed for cross-context requests
	Words          store.WordStore           // Word card persistence
	Settings       store.SettingsStore       // Trigger mode persistence
	Notifier       notify.Publisher          // Settings change broadcast (nil disables)
	BackupTrigger  chan struct{}             // Channel to trigger a manual backup (nil if backups disabled)
	ExportLabel    string                    // Filename label for CSV downloads
	PingStore      func(context.Context) error // Readiness probe against the backing store (nil means always ready)
}

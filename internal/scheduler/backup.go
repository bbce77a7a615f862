package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/export"
	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/store"
)

// Backup handles periodic CSV snapshots of the word collection
type Backup struct {
	words         store.WordStore
	filePath      string
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewBackup creates a new backup scheduler writing to filePath
func NewBackup(
	filePath string,
	words store.WordStore,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Backup {
	return &Backup{
		words:         words,
		filePath:      filePath,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic backup process
func (b *Backup) Start(ctx context.Context) error {
	// Write a snapshot immediately on start
	if err := b.Run(ctx); err != nil {
		b.logger.Warn("initial backup failed", logger.Error(err))
	}

	ticker := time.NewTicker(b.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := b.Run(ctx); err != nil {
					b.logger.Error("failed to write backup",
						logger.Error(err))
				}
			case <-b.manualTrigger:
				b.logger.Info("manual backup triggered")
				if err := b.Run(ctx); err != nil {
					b.logger.Error("failed to write backup",
						logger.Error(err))
				}
			case <-b.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the backup scheduler
func (b *Backup) Stop() {
	close(b.stopCh)
}

// Run writes one CSV snapshot. The file is written to a temp path first
// so a crash mid-write never truncates the previous backup.
func (b *Backup) Run(ctx context.Context) error {
	cards, err := b.words.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}
	domain.SortNewestFirst(cards)

	tmpPath := b.filePath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}

	if err := export.WriteCSV(f, cards); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write backup csv: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close backup file: %w", err)
	}
	if err := os.Rename(tmpPath, b.filePath); err != nil {
		return fmt.Errorf("failed to move backup into place: %w", err)
	}

	b.logger.Info("backup written",
		logger.String("path", b.filePath),
		logger.Int("words", len(cards)),
	)

	return nil
}

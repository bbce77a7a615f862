package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/befoot1242/wordbook/internal/config"
	"github.com/befoot1242/wordbook/internal/httpserver"
	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/notify"
	"github.com/befoot1242/wordbook/internal/redis"
	"github.com/befoot1242/wordbook/internal/scheduler"
	"github.com/befoot1242/wordbook/internal/sources/yamlbook"
	redisstore "github.com/befoot1242/wordbook/internal/store/redis"
	"github.com/befoot1242/wordbook/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	backup      *scheduler.Backup
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	store := redisstore.NewStore(redisClient)
	broadcaster := notify.NewBroadcaster(redisClient, loggerClient)

	// One-shot seed import (if a seed file is configured)
	if cfg.ImportFile != "" {
		seeder := yamlbook.NewSeeder(cfg.ImportFile, store, loggerClient)
		if added, err := seeder.Import(context.Background()); err != nil {
			loggerClient.Warn("seed import failed", logger.Error(err))
		} else if added > 0 {
			loggerClient.Info("seed words imported", logger.Int("added", added))
		}
	}

	// Initialize backup scheduler (if a backup file is configured)
	var backup *scheduler.Backup
	var backupTrigger chan struct{}
	if cfg.BackupFile != "" {
		backupTrigger = make(chan struct{}, 1)
		backup = scheduler.NewBackup(
			cfg.BackupFile,
			store,
			loggerClient,
			cfg.BackupInterval,
			backupTrigger,
		)
	} else {
		loggerClient.Info("backup file not configured, automatic backups disabled")
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedOrigins: cfg.AllowedOrigins,
		Words:          store,
		Settings:       store,
		Notifier:       broadcaster,
		BackupTrigger:  backupTrigger,
		ExportLabel:    cfg.ExportLabel,
		PingStore: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		backup:      backup,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting wordbookd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("wordbookd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.backup != nil {
		if err := a.backup.Start(ctx); err != nil {
			return fmt.Errorf("failed to start backup scheduler: %w", err)
		}
		a.logger.Info("backup scheduler started",
			logger.Duration("interval", a.cfg.BackupInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	if a.backup != nil {
		a.backup.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ wordbookd stopped cleanly")
	return nil
}

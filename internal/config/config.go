package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	AllowedOrigins []string // CORS origins for the capture/management clients
	AllowedHosts   []string // optional, restrict access to specific Host headers

	ImportFile string // optional YAML seed file, empty = import disabled

	BackupFile     string        // optional CSV backup target, empty = backup disabled
	BackupInterval time.Duration // interval between automatic backups (default: 24h)

	ExportLabel string // filename label for CSV exports, ex: 単語帳

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisWarnThreshold  int           // warn after this many attempts
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server settings
		ListenPort:      getenv("WORDBOOK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("WORDBOOK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("WORDBOOK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("WORDBOOK_PRETTY_LOG", true),

		// Access
		AllowedOrigins: splitAndTrim(getenv("WORDBOOK_ALLOWED_ORIGINS", "*")),
		AllowedHosts:   splitAndTrim(getenv("WORDBOOK_ALLOWED_HOSTS", "")),

		// Import / backup
		ImportFile:     getenv("WORDBOOK_IMPORT_FILE", ""),
		BackupFile:     getenv("WORDBOOK_BACKUP_FILE", ""),
		BackupInterval: mustDuration("WORDBOOK_BACKUP_INTERVAL", 24*time.Hour),

		ExportLabel: getenv("WORDBOOK_EXPORT_LABEL", "単語帳"),

		// Redis settings
		RedisAddr:           getenv("WORDBOOK_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("WORDBOOK_REDIS_USERNAME", ""),
		RedisPassword:       getenv("WORDBOOK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("WORDBOOK_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

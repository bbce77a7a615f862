package handlers

import (
	"net/http"

	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
)

// Backup triggers an immediate CSV snapshot outside the regular schedule.
func Backup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.BackupTrigger == nil {
			respondError(w, http.StatusServiceUnavailable, "backups are not configured")
			return
		}

		select {
		case d.BackupTrigger <- struct{}{}:
			d.Logger.Info("manual backup triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			respondJSON(w, http.StatusAccepted, okResponse{Success: true})
		default:
			d.Logger.Warn("backup already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			respondError(w, http.StatusTooManyRequests, "backup already in progress")
		}
	}
}

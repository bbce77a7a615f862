package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports whether the backing store answers. Not ready means the
// gateway is up but cannot persist anything yet.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ready := true
		if d.PingStore != nil {
			if err := d.PingStore(r.Context()); err != nil {
				d.Logger.Warn("store not reachable", logger.Error(err))
				ready = false
			}
		}

		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{Ready: ready})
	}
}

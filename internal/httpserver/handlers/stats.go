package handlers

import (
	"net/http"
	"time"

	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
)

type statsResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Newest  string `json:"newest,omitempty"`
	Oldest  string `json:"oldest,omitempty"`
}

// Stats reports the collection size and the registration span.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := d.Words.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list words for stats", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}

		resp := statsResponse{Success: true, Count: len(cards)}
		if len(cards) > 0 {
			newest, oldest := cards[0].Timestamp, cards[0].Timestamp
			for _, c := range cards[1:] {
				if c.Timestamp.After(newest) {
					newest = c.Timestamp
				}
				if c.Timestamp.Before(oldest) {
					oldest = c.Timestamp
				}
			}
			resp.Newest = newest.Format(time.RFC3339)
			resp.Oldest = oldest.Format(time.RFC3339)
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

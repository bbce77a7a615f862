package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
)

type settingsResponse struct {
	Success  bool            `json:"success"`
	Settings domain.Settings `json:"settings"`
}

// GetSettings returns the current trigger mode settings.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := d.Settings.GetSettings(r.Context())
		if err != nil {
			d.Logger.Error("failed to load settings", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to load settings")
			return
		}
		respondJSON(w, http.StatusOK, settingsResponse{Success: true, Settings: settings})
	}
}

// UpdateSettings persists new settings and broadcasts the change to all
// capture contexts. Broadcast failures never fail the write.
func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings domain.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !settings.TriggerMode.Valid() {
			respondError(w, http.StatusBadRequest, "invalid trigger mode")
			return
		}

		if err := d.Settings.SaveSettings(r.Context(), settings); err != nil {
			d.Logger.Error("failed to save settings", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}

		d.Logger.Info("settings updated",
			logger.String("trigger_mode", string(settings.TriggerMode)))

		if d.Notifier != nil {
			d.Notifier.SettingsChanged(r.Context(), settings)
		}

		respondJSON(w, http.StatusOK, settingsResponse{Success: true, Settings: settings})
	}
}

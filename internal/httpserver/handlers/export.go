package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/export"
	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
)

// Export streams the whole collection as a CSV download, newest first.
// The filename label may be non-ASCII so it goes out RFC 5987 encoded.
func Export(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := d.Words.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list words for export", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to export words")
			return
		}
		domain.SortNewestFirst(cards)

		filename := export.Filename(d.ExportLabel, d.TimeNow())
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))

		if err := export.WriteCSV(w, cards); err != nil {
			d.Logger.Error("failed to write export csv", logger.Error(err))
			return
		}

		d.Logger.Info("collection exported",
			logger.String("filename", filename),
			logger.Int("words", len(cards)))
	}
}

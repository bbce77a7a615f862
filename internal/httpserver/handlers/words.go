package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/store"
)

type saveResponse struct {
	Success bool   `json:"success"`
	WordID  string `json:"wordId"`
}

type listResponse struct {
	Success bool          `json:"success"`
	Words   []domain.Card `json:"words"`
}

// SaveWord appends a new card. The id is assigned here, never by the caller.
func SaveWord(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		draft = draft.Trimmed()
		if err := draft.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if draft.Timestamp.IsZero() {
			draft.Timestamp = d.TimeNow()
		}

		id, err := d.Words.Append(r.Context(), draft)
		if err != nil {
			d.Logger.Error("failed to save word", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to save word")
			return
		}

		d.Logger.Info("word saved",
			logger.String("word_id", id),
			logger.String("word", draft.Word))
		respondJSON(w, http.StatusOK, saveResponse{Success: true, WordID: id})
	}
}

// ListWords returns every card, newest first.
func ListWords(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := d.Words.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list words", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to list words")
			return
		}

		domain.SortNewestFirst(cards)
		if cards == nil {
			cards = []domain.Card{}
		}
		respondJSON(w, http.StatusOK, listResponse{Success: true, Words: cards})
	}
}

// UpdateWord replaces the editable fields of one card.
func UpdateWord(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var update domain.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := update.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := d.Words.Update(r.Context(), id, update); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Word not found")
				return
			}
			d.Logger.Error("failed to update word",
				logger.String("word_id", id),
				logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to update word")
			return
		}

		respondJSON(w, http.StatusOK, okResponse{Success: true})
	}
}

// DeleteWord removes one card. Deleting an absent id still succeeds.
func DeleteWord(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := d.Words.Delete(r.Context(), id); err != nil {
			d.Logger.Error("failed to delete word",
				logger.String("word_id", id),
				logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to delete word")
			return
		}

		respondJSON(w, http.StatusOK, okResponse{Success: true})
	}
}

// ClearWords empties the whole collection.
func ClearWords(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Words.Clear(r.Context()); err != nil {
			d.Logger.Error("failed to clear words", logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to clear words")
			return
		}

		d.Logger.Info("word collection cleared")
		respondJSON(w, http.StatusOK, okResponse{Success: true})
	}
}

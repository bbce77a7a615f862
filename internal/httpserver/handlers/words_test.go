package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/httpserver/handlers"
	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/store/memory"
)

func testDeps(st *memory.Store) deps.Deps {
	return deps.Deps{
		Logger:      logger.New("error", false),
		StartTime:   time.Now(),
		TimeNow:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		Words:       st,
		Settings:    st,
		ExportLabel: "単語帳",
	}
}

func wordsRouter(d deps.Deps) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/words", handlers.SaveWord(d))
	r.Get("/api/words", handlers.ListWords(d))
	r.Delete("/api/words", handlers.ClearWords(d))
	r.Put("/api/words/{id}", handlers.UpdateWord(d))
	r.Delete("/api/words/{id}", handlers.DeleteWord(d))
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSaveWord(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	rec := doJSON(t, h, http.MethodPost, "/api/words",
		`{"word":"  ephemeral  ","sentence":"Fame is ephemeral.","url":"https://example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		WordID  string `json:"wordId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.WordID)

	cards, err := st.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "ephemeral", cards[0].Word)
	assert.Equal(t, resp.WordID, cards[0].ID)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), cards[0].Timestamp)
}

func TestSaveWordRejectsEmptyWord(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	for _, body := range []string{`{"word":""}`, `{"word":"   "}`, `{"sentence":"no word"}`} {
		rec := doJSON(t, h, http.MethodPost, "/api/words", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	}

	cards, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSaveWordRejectsBadJSON(t *testing.T) {
	h := wordsRouter(testDeps(memory.NewStore()))
	rec := doJSON(t, h, http.MethodPost, "/api/words", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListWordsNewestFirst(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, word := range []string{"oldest", "middle", "newest"} {
		_, err := st.Append(context.Background(), domain.Draft{
			Word:      word,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/words", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool          `json:"success"`
		Words   []domain.Card `json:"words"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Words, 3)
	assert.Equal(t, "newest", resp.Words[0].Word)
	assert.Equal(t, "oldest", resp.Words[2].Word)
}

func TestListWordsEmptyCollection(t *testing.T) {
	h := wordsRouter(testDeps(memory.NewStore()))

	rec := doJSON(t, h, http.MethodGet, "/api/words", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"words":[]`)
}

func TestUpdateWord(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	id, err := st.Append(context.Background(), domain.Draft{Word: "cat", Meaning: "", Timestamp: time.Now()})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPut, "/api/words/"+id, `{"meaning":"ねこ"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cards, err := st.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "cat", cards[0].Word)
	assert.Equal(t, "ねこ", cards[0].Meaning)
}

func TestUpdateWordNotFound(t *testing.T) {
	h := wordsRouter(testDeps(memory.NewStore()))

	rec := doJSON(t, h, http.MethodPut, "/api/words/missing", `{"meaning":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Word not found", resp.Error)
}

func TestUpdateWordRejectsBlankWord(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	id, err := st.Append(context.Background(), domain.Draft{Word: "cat", Timestamp: time.Now()})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPut, "/api/words/"+id, `{"word":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cards, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cat", cards[0].Word)
}

func TestDeleteWord(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	id, err := st.Append(context.Background(), domain.Draft{Word: "cat", Timestamp: time.Now()})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodDelete, "/api/words/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	cards, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestDeleteWordAbsentIDStillSucceeds(t *testing.T) {
	h := wordsRouter(testDeps(memory.NewStore()))

	rec := doJSON(t, h, http.MethodDelete, "/api/words/never-existed", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestClearWords(t *testing.T) {
	st := memory.NewStore()
	h := wordsRouter(testDeps(st))

	for _, word := range []string{"a", "b", "c"} {
		_, err := st.Append(context.Background(), domain.Draft{Word: word, Timestamp: time.Now()})
		require.NoError(t, err)
	}

	rec := doJSON(t, h, http.MethodDelete, "/api/words", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cards, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

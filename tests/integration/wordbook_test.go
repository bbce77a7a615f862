package integration

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/befoot1242/wordbook/internal/capture"
	"github.com/befoot1242/wordbook/internal/client"
	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/httpserver/routes"
	"github.com/befoot1242/wordbook/internal/logger"
	"github.com/befoot1242/wordbook/internal/manage"
	"github.com/befoot1242/wordbook/internal/store/memory"
)

func newGateway(t *testing.T) (*httptest.Server, *client.Client) {
	t.Helper()

	st := memory.NewStore()
	d := deps.Deps{
		Logger:      logger.New("error", false),
		StartTime:   time.Now(),
		TimeNow:     time.Now,
		Words:       st,
		Settings:    st,
		ExportLabel: "単語帳",
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts, client.New(ts.URL)
}

func TestWordLifecycle(t *testing.T) {
	_, c := newGateway(t)
	ctx := context.Background()

	// Save through the capture form, the way a page selection would
	form := capture.NewForm("ephemeral", "Fame is ephemeral.")
	form.Meaning = "lasting a very short time"
	_, err := form.Submit(ctx, c, "https://example.com/article", time.Now())
	require.NoError(t, err)

	id2, err := c.Save(ctx, domain.Draft{
		Word:      "cat",
		Sentence:  "I saw a cat.",
		Timestamp: time.Now().Add(time.Second),
	})
	require.NoError(t, err)

	cards, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "cat", cards[0].Word, "list comes back newest first")
	assert.Equal(t, "ephemeral", cards[1].Word)
	assert.Equal(t, "https://example.com/article", cards[1].URL)

	// Edit, then delete
	meaning := "ねこ"
	require.NoError(t, c.Update(ctx, id2, domain.Update{Meaning: &meaning}))

	cards, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ねこ", cards[0].Meaning)

	require.NoError(t, c.Delete(ctx, id2))
	cards, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	// Updating the deleted card reports it missing
	err = c.Update(ctx, id2, domain.Update{Meaning: &meaning})
	assert.Error(t, err)

	require.NoError(t, c.Clear(ctx))
	cards, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestManagementSurfaceOverGateway(t *testing.T) {
	_, c := newGateway(t)
	ctx := context.Background()

	words := []string{"apple", "banana", "cherry"}
	for i, w := range words {
		_, err := c.Save(ctx, domain.Draft{
			Word:      w,
			Meaning:   "fruit",
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	list := manage.NewList(c)
	require.NoError(t, list.Load(ctx))
	require.Equal(t, 3, list.Count())
	assert.Equal(t, "cherry", list.Filtered()[0].Word)

	list.Search("ban")
	require.Len(t, list.Filtered(), 1)
	assert.Equal(t, "banana", list.Filtered()[0].Word)

	// Edit through the model and confirm it landed server side
	id := list.Filtered()[0].ID
	require.NoError(t, list.SaveEdit(ctx, id, "banana", "バナナ", ""))

	cards, err := c.List(ctx)
	require.NoError(t, err)
	for _, card := range cards {
		if card.ID == id {
			assert.Equal(t, "バナナ", card.Meaning)
		}
	}

	require.NoError(t, list.Remove(ctx, id))
	cards, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestExportDownload(t *testing.T) {
	_, c := newGateway(t)
	ctx := context.Background()

	_, err := c.Save(ctx, domain.Draft{
		Word:      "quote\"inside",
		Meaning:   "a, b",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	var buf strings.Builder
	filename, err := c.Export(ctx, &buf)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "単語帳_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	body := buf.String()
	assert.True(t, strings.HasPrefix(body, "\ufeff"))
	assert.Contains(t, body, `"quote""inside"`)
	assert.Contains(t, body, `"a, b"`)
}

func TestSettingsRoundTripAndCaptureModeSwitch(t *testing.T) {
	_, c := newGateway(t)
	ctx := context.Background()

	settings, err := c.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TriggerSelection, settings.TriggerMode)

	require.NoError(t, c.SaveSettings(ctx, domain.Settings{TriggerMode: domain.TriggerKey}))

	settings, err = c.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TriggerKey, settings.TriggerMode)

	// A capture session picking up the stored settings switches behavior
	session := capture.NewSession(settings, nil, capture.WithSettleDelay(0))
	session.HandleSelection(capture.Selection{Text: "cat", Enclosing: "I saw a cat."})
	assert.False(t, session.FormOpen(), "selection alone must not open the form in key mode")
	pending, ok := session.Pending()
	assert.True(t, ok)
	assert.Equal(t, "cat", pending)
}

func TestCountMatchesCollection(t *testing.T) {
	_, c := newGateway(t)
	ctx := context.Background()

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for i := 0; i < 5; i++ {
		_, err := c.Save(ctx, domain.Draft{Word: "w", Timestamp: time.Now()})
		require.NoError(t, err)
	}

	count, err = c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

// Package client is the request/response bridge between the UI surfaces and
// the persistence gateway. Every call issues exactly one request and
// receives exactly one response; nothing is retried, and callers must not
// assume responses to concurrent requests arrive in issue order.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/befoot1242/wordbook/internal/domain"
	"github.com/befoot1242/wordbook/internal/store"
)

// Client talks to a running wordbook gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the gateway at baseURL, ex. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// response is the gateway envelope shared by every verb.
type response struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	WordID   string           `json:"wordId,omitempty"`
	Words    []domain.Card    `json:"words,omitempty"`
	Count    int              `json:"count,omitempty"`
	Settings *domain.Settings `json:"settings,omitempty"`
}

// Save submits a new card and returns its assigned id.
func (c *Client) Save(ctx context.Context, draft domain.Draft) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/words", draft)
	if err != nil {
		return "", err
	}
	return resp.WordID, nil
}

// List fetches the full collection in storage order.
func (c *Client) List(ctx context.Context) ([]domain.Card, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/words", nil)
	if err != nil {
		return nil, err
	}
	if resp.Words == nil {
		return []domain.Card{}, nil
	}
	return resp.Words, nil
}

// Update merges the given fields into the card with that id. Returns
// store.ErrNotFound when the gateway reports an absent id.
func (c *Client) Update(ctx context.Context, id string, upd domain.Update) error {
	_, err := c.do(ctx, http.MethodPut, "/api/words/"+id, upd)
	return err
}

// Delete removes the card with that id; absent ids succeed.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/words/"+id, nil)
	return err
}

// Clear empties the whole collection.
func (c *Client) Clear(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/words", nil)
	return err
}

// Count fetches the number of stored cards.
func (c *Client) Count(ctx context.Context) (int, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/stats", nil)
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// GetSettings fetches the trigger-mode preference.
func (c *Client) GetSettings(ctx context.Context) (domain.Settings, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/settings", nil)
	if err != nil {
		return domain.Settings{}, err
	}
	if resp.Settings == nil {
		return domain.DefaultSettings(), nil
	}
	return resp.Settings.Normalized(), nil
}

// SaveSettings stores the preference; the gateway broadcasts the change.
func (c *Client) SaveSettings(ctx context.Context, settings domain.Settings) error {
	_, err := c.do(ctx, http.MethodPut, "/api/settings", settings)
	return err
}

// Export streams the CSV export into w and returns the suggested filename
// from the Content-Disposition header, if any.
func (c *Client) Export(ctx context.Context, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/export", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to build export request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("export request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("export request failed: %s", resp.Status)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read export: %w", err)
	}
	return exportFilename(resp.Header.Get("Content-Disposition")), nil
}

func exportFilename(disposition string) string {
	const marker = "filename*=UTF-8''"
	if idx := strings.Index(disposition, marker); idx >= 0 {
		if decoded, err := url.PathUnescape(disposition[idx+len(marker):]); err == nil {
			return decoded
		}
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*response, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if !resp.Success {
		if httpResp.StatusCode == http.StatusNotFound {
			return nil, store.ErrNotFound
		}
		if resp.Error == "" {
			resp.Error = httpResp.Status
		}
		return nil, fmt.Errorf("gateway error: %s", resp.Error)
	}
	return &resp, nil
}

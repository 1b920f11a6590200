package movary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bearhudson/movary-frontend/models"
)

// Client handles Movary API interactions for token exchange and watchlist reads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientName string
}

// NewClient creates a new Movary API client. A nil httpClient falls back to a
// client without a deadline: a hung upstream call blocks only its own request.
func NewClient(baseURL, clientName string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientName: clientName,
	}
}

// tokenResponse covers both token field spellings seen on deployed servers.
type tokenResponse struct {
	Token     string `json:"token"`
	AuthToken string `json:"authToken"`
}

func (r tokenResponse) value() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AuthToken
}

// watchlistEnvelope covers both list field spellings seen on deployed servers.
type watchlistEnvelope struct {
	Data      []models.WatchlistEntry `json:"data"`
	Watchlist []models.WatchlistEntry `json:"watchlist"`
}

func (e watchlistEnvelope) entries() []models.WatchlistEntry {
	if len(e.Data) > 0 {
		return e.Data
	}
	return e.Watchlist
}

// Authenticate exchanges credentials for a short-lived API token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	payload := map[string]any{
		"email":      email,
		"password":   password,
		"rememberMe": true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/authentication/token", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Movary-Client", c.clientName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("movary auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("movary auth failed: %s - %s", resp.Status, string(respBody))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if token.value() == "" {
		return "", fmt.Errorf("movary auth response carried no token field")
	}

	return token.value(), nil
}

// NewestWatchlistMovie returns the most recently added watchlist entry for the
// user, or nil when the watchlist is empty. Only the single newest entry is
// ever requested.
func (c *Client) NewestWatchlistMovie(ctx context.Context, token, userID string) (*models.WatchlistEntry, error) {
	endpoint := fmt.Sprintf("%s/api/users/%s/watchlist/movies?page=1&limit=1&sortBy=addedAt&sortOrder=desc",
		c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("movary watchlist request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("movary watchlist failed: %s - %s", resp.Status, string(respBody))
	}

	var envelope watchlistEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	entries := envelope.entries()
	if len(entries) == 0 {
		return nil, nil
	}

	entry := entries[0]
	return &entry, nil
}

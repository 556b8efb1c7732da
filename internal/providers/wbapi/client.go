package wbapi

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

	"github.com/spf13/cast"

	"wb-squad-stats/internal/domain/players"
	"wb-squad-stats/internal/providers"
)

// Config controls how the client reaches the War Brokers stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client lists squads and fetches player statistics from the War Brokers API.
// Every call is a single blocking GET with no retry.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// ListSquads returns every squad name known upstream.
func (c *Client) ListSquads(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, providers.OpListSquads, squadListPath, nil)
	if err != nil {
		return nil, err
	}
	var squads []string
	if err := decode(body, &squads); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", providerName, providers.OpListSquads, err)
	}
	return squads, nil
}

// ListMembers returns the roster of one squad.
func (c *Client) ListMembers(ctx context.Context, squad string) ([]players.Member, error) {
	if squad == "" {
		return nil, fmt.Errorf("%s: %s: squad name: %w", providerName, providers.OpListMembers, providers.ErrInvalidID)
	}
	body, err := c.get(ctx, providers.OpListMembers, squadMembersPath, url.Values{"squadName": {squad}})
	if err != nil {
		return nil, err
	}
	var payload []memberResponse
	if err := decode(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: %s %q: %w", providerName, providers.OpListMembers, squad, err)
	}

	members := make([]players.Member, 0, len(payload))
	for _, m := range payload {
		members = append(members, players.Member{
			UID:   strings.TrimSpace(cast.ToString(m.UID)),
			Squad: squad,
		})
	}
	return members, nil
}

// GetPlayer fetches one player's statistics document.
// An empty body, null, an empty or non-object document and HTTP 404 all yield providers.ErrPlayerNotFound.
func (c *Client) GetPlayer(ctx context.Context, uid string) (players.Record, error) {
	if uid == "" {
		return nil, fmt.Errorf("%s: %s: uid: %w", providerName, providers.OpGetPlayer, providers.ErrInvalidID)
	}
	body, err := c.get(ctx, providers.OpGetPlayer, playerPath, url.Values{"uid": {uid}})
	if err != nil {
		if st, ok := providers.AsStatusError(err); ok && st.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("uid %s: %w", uid, providers.ErrPlayerNotFound)
		}
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("uid %s: %w", uid, providers.ErrPlayerNotFound)
	}

	var doc any
	if err := decode(body, &doc); err != nil {
		return nil, fmt.Errorf("%s: %s %q: %w", providerName, providers.OpGetPlayer, uid, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil, fmt.Errorf("uid %s: %w", uid, providers.ErrPlayerNotFound)
	}
	return players.Record(obj), nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", providerName, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   providerName,
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: read body: %w", providerName, op, err)
	}
	return body, nil
}

// decode parses body keeping numbers as json.Number so they are written back verbatim.
func decode(body []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

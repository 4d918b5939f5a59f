package feed

import (
	"PassPlotApi/internal/passplot"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrGameNotFound = errors.New("feed: game not found")

// Client fetches raw play-by-play payloads from the upstream feed. It does
// no filtering or extraction; callers hand the payload to the passplot
// engine.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: "PassPlotApi/1.0",
	}
}

// PlayByPlay fetches the full point/event record for one game.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) (*passplot.RawPayload, error) {
	url := fmt.Sprintf("%s/games/%s/play-by-play", c.baseURL, gameID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrGameNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("feed error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var payload passplot.RawPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &payload, nil
}

// YouTube Music [YouTubeSearcher] implementation
//
// Communicates with a local ytmusicapi proxy server. The proxy wraps the
// ytmusicapi Python library for YouTube Music search.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultYTBaseURL string = "http://localhost:8080"

// YouTubeMusicService implements [YouTubeSearcher] via the proxy.
type YouTubeMusicService struct {
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeMusicService creates a new YouTube Music service instance.
func NewYouTubeMusicService(baseURL string) *YouTubeMusicService {
	if baseURL == "" {
		baseURL = defaultYTBaseURL
	}

	return &YouTubeMusicService{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Name returns the service name.
func (y *YouTubeMusicService) Name() string {
	return "YouTube Music"
}

func (y *YouTubeMusicService) doRequest(ctx context.Context, endpoint string, result any) error {
	apiURL := y.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("youtube music API error (status %d): %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("youtube music API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// SearchSongs searches YouTube Music for the given free-text query, filtered
// to songs. Results are returned in the order the proxy ranked them; no
// result-count limit is applied.
//
// Calls GET /api/search?q={query}&filter=songs on the proxy.
func (y *YouTubeMusicService) SearchSongs(ctx context.Context, query string) ([]YouTubeResult, error) {
	endpoint := fmt.Sprintf("/api/search?q=%s&filter=songs", url.QueryEscape(query))

	var results []YouTubeResult
	if err := y.doRequest(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	return results, nil
}

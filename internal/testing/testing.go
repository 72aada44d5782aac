// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/statx/internal/services"
)

// MockSpotify is a configurable test double for [services.SpotifySearcher]
type MockSpotify struct {
	Match *services.SpotifyTrackMatch
	Err   error
	Calls int
}

func (m *MockSpotify) SearchTrack(ctx context.Context, artist, title string) (*services.SpotifyTrackMatch, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Match, nil
}

func (m *MockSpotify) Name() string { return "Spotify" }

// MockYouTube is a configurable test double for [services.YouTubeSearcher]
type MockYouTube struct {
	Results []services.YouTubeResult
	Err     error
	Calls   int
}

func (m *MockYouTube) SearchSongs(ctx context.Context, query string) ([]services.YouTubeResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

func (m *MockYouTube) Name() string { return "YouTube Music" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// Int returns a pointer to v, for building expected entries in table tests.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

package services

import (
	"context"
)

// SpotifySearcher searches the Spotify catalog for the best track match.
type SpotifySearcher interface {
	// SearchTrack issues a `track:<title> artist:<artist>` search limited to one
	// result and returns the top item. Returns shared.ErrTrackNotFound when the
	// catalog has no match.
	SearchTrack(ctx context.Context, artist, title string) (*SpotifyTrackMatch, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// YouTubeSearcher searches YouTube Music for song results.
type YouTubeSearcher interface {
	// SearchSongs issues a free-text search filtered to songs and returns the
	// results in the order the backend ranked them.
	SearchSongs(ctx context.Context, query string) ([]YouTubeResult, error)

	// Name returns the name of the service (e.g., "YouTube Music")
	Name() string
}

// SpotifyTrackMatch is the top Spotify search hit for a track query.
type SpotifyTrackMatch struct {
	Popularity  int    `json:"popularity"`
	ExternalURL string `json:"external_url"`
	Album       string `json:"album,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}

// YouTubeArtist represents an artist in YouTube Music responses.
type YouTubeArtist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// YouTubeResult represents one entry of a YouTube Music search response.
//
// ResultType distinguishes songs from videos. Views is nil when the proxy
// reports no view count for the entry.
type YouTubeResult struct {
	ResultType string          `json:"resultType"`
	VideoID    string          `json:"videoId"`
	Title      string          `json:"title"`
	Artists    []YouTubeArtist `json:"artists"`
	Views      *int64          `json:"views,omitempty"`
}

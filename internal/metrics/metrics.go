package metrics

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/statx/internal/services"
	"github.com/desertthunder/statx/internal/shared"
)

const (
	musicWatchURL = "https://music.youtube.com/watch?v="
	videoWatchURL = "https://www.youtube.com/watch?v="
)

// Query identifies a track by artist name and title. Matching against
// backend results is byte-exact: no case folding, no trimming.
type Query struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

func (q Query) String() string {
	return fmt.Sprintf("%s - %s", q.Artist, q.Title)
}

// SpotifyEntry is the normalized Spotify projection of a matched track.
// The zero value marshals to {} and means "not found".
type SpotifyEntry struct {
	Popularity *int   `json:"popularity,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Found reports whether the entry holds a match.
func (e SpotifyEntry) Found() bool {
	return e.Popularity != nil && e.URL != ""
}

// YouTubeEntry is the normalized YouTube Music projection of a matched
// track. The zero value marshals to {} and means "not found".
type YouTubeEntry struct {
	Views *int64 `json:"views,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Found reports whether the entry holds a match.
func (e YouTubeEntry) Found() bool {
	return e.URL != ""
}

// Record is the aggregate output for one query. It is constructed fresh per
// fetch and never mutated afterwards.
type Record struct {
	Artist  string       `json:"artist"`
	Title   string       `json:"title"`
	Spotify SpotifyEntry `json:"spotify"`
	YouTube YouTubeEntry `json:"youtube_music"`
}

// Summary aggregates hit counts over a batch of records.
type Summary struct {
	Total       int     `json:"total"`
	SpotifyHits int     `json:"spotify_hits"`
	YouTubeHits int     `json:"youtube_hits"`
	HitRate     float64 `json:"hit_rate"`
}

// Summarize counts backend hits across records. HitRate is the share of
// queries matched by at least one backend.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	either := 0
	for _, r := range records {
		if r.Spotify.Found() {
			s.SpotifyHits++
		}
		if r.YouTube.Found() {
			s.YouTubeHits++
		}
		if r.Spotify.Found() || r.YouTube.Found() {
			either++
		}
	}
	if s.Total > 0 {
		s.HitRate = float64(either) / float64(s.Total) * 100
	}
	return s
}

// Fetcher resolves track queries against the two backends.
//
// Either service may be nil (failed initialization); the corresponding
// entry is then empty for every query for the process lifetime.
type Fetcher struct {
	spotify services.SpotifySearcher
	youtube services.YouTubeSearcher
	logger  *log.Logger
}

// NewFetcher creates a Fetcher with the provided backend clients.
func NewFetcher(spotify services.SpotifySearcher, youtube services.YouTubeSearcher, logger *log.Logger) *Fetcher {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Fetcher{
		spotify: spotify,
		youtube: youtube,
		logger:  logger,
	}
}

// Fetch resolves a single query against both backends and merges the
// results. It never returns an error: lookup failures and missing matches
// both collapse to empty entries, with one status log line per backend.
func (f *Fetcher) Fetch(ctx context.Context, artist, title string) Record {
	record := Record{Artist: artist, Title: title}

	record.Spotify = f.resolveSpotify(ctx, artist, title)
	if record.Spotify.Found() {
		f.logger.Info("spotify popularity", "artist", artist, "title", title, "popularity", *record.Spotify.Popularity)
	} else {
		f.logger.Warn("spotify data not found or error occurred", "artist", artist, "title", title)
	}

	record.YouTube = f.resolveYouTube(ctx, artist, title)
	if record.YouTube.Found() {
		if record.YouTube.Views != nil {
			f.logger.Info("youtube music views", "artist", artist, "title", title, "views", *record.YouTube.Views)
		} else {
			f.logger.Info("youtube music match without view count", "artist", artist, "title", title)
		}
	} else {
		f.logger.Warn("youtube music data not found or error occurred", "artist", artist, "title", title)
	}

	return record
}

// FetchAll resolves queries sequentially, one at a time, emitting progress
// updates for CLI/TUI display. No pacing is applied between queries.
func (f *Fetcher) FetchAll(ctx context.Context, queries []Query, progress chan<- ProgressUpdate) []Record {
	total := len(queries)
	records := make([]Record, total)

	for i, q := range queries {
		sendProgress(progress, fetchTrackUpdate(i+1, total, q))
		records[i] = f.Fetch(ctx, q.Artist, q.Title)
		sendProgress(progress, trackResolvedUpdate(i+1, total, records[i]))
	}

	sendProgress(progress, batchDoneUpdate(total, Summarize(records)))
	return records
}

// resolveSpotify reduces the Spotify search response to at most one entry.
// Spotify's own ranking is trusted: the first (only) item wins.
func (f *Fetcher) resolveSpotify(ctx context.Context, artist, title string) SpotifyEntry {
	if f.spotify == nil {
		return SpotifyEntry{}
	}

	match, err := f.spotify.SearchTrack(ctx, artist, title)
	if err != nil {
		f.logger.Debug("spotify lookup failed", "artist", artist, "title", title, "error", err)
		return SpotifyEntry{}
	}

	popularity := match.Popularity
	return SpotifyEntry{Popularity: &popularity, URL: match.ExternalURL}
}

// resolveYouTube reduces the YouTube Music search response to at most one
// entry using the tiered selection policy.
func (f *Fetcher) resolveYouTube(ctx context.Context, artist, title string) YouTubeEntry {
	if f.youtube == nil {
		return YouTubeEntry{}
	}

	results, err := f.youtube.SearchSongs(ctx, fmt.Sprintf("%s %s", artist, title))
	if err != nil {
		f.logger.Debug("youtube music lookup failed", "artist", artist, "title", title, "error", err)
		return YouTubeEntry{}
	}

	return selectYouTubeCandidate(results, artist, title)
}

// selectYouTubeCandidate applies the three-tier policy, taking the first
// tier that yields a candidate:
//
//  1. first song whose first artist and title equal the query exactly
//  2. first video with the same exact equality
//  3. first song with a present view count, regardless of artist/title
//
// Exact-match tiers guard against same-titled covers; the fallback trades
// precision for coverage when no exact match exists.
func selectYouTubeCandidate(results []services.YouTubeResult, artist, title string) YouTubeEntry {
	for _, r := range results {
		if r.ResultType == "song" && exactMatch(r, artist, title) {
			return YouTubeEntry{Views: r.Views, URL: musicWatchURL + r.VideoID}
		}
	}

	for _, r := range results {
		if r.ResultType == "video" && exactMatch(r, artist, title) {
			return YouTubeEntry{Views: r.Views, URL: videoWatchURL + r.VideoID}
		}
	}

	for _, r := range results {
		if r.ResultType == "song" && r.Views != nil {
			return YouTubeEntry{Views: r.Views, URL: musicWatchURL + r.VideoID}
		}
	}

	return YouTubeEntry{}
}

// exactMatch tests first-artist and title equality. Byte-exact on purpose.
func exactMatch(r services.YouTubeResult, artist, title string) bool {
	return len(r.Artists) > 0 && r.Artists[0].Name == artist && r.Title == title
}

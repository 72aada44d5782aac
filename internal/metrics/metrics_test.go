package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/statx/internal/services"
	"github.com/desertthunder/statx/internal/shared"
	tu "github.com/desertthunder/statx/internal/testing"
)

func quietLogger() *log.Logger {
	return shared.NewLogger(io.Discard)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("both backends hit", func(t *testing.T) {
		spotify := &tu.MockSpotify{Match: &services.SpotifyTrackMatch{
			Popularity:  87,
			ExternalURL: "https://open.spotify.com/track/abc123",
		}}
		youtube := &tu.MockYouTube{Results: []services.YouTubeResult{
			{
				ResultType: "song",
				VideoID:    "vid1",
				Title:      "Karma Police",
				Artists:    []services.YouTubeArtist{{Name: "Radiohead"}},
				Views:      tu.Int64(1000000),
			},
		}}

		fetcher := NewFetcher(spotify, youtube, quietLogger())
		record := fetcher.Fetch(ctx, "Radiohead", "Karma Police")

		if record.Artist != "Radiohead" || record.Title != "Karma Police" {
			t.Errorf("expected query echoed in record, got %s - %s", record.Artist, record.Title)
		}
		if !record.Spotify.Found() {
			t.Fatal("expected spotify entry")
		}
		if *record.Spotify.Popularity != 87 {
			t.Errorf("expected popularity 87, got %d", *record.Spotify.Popularity)
		}
		if record.Spotify.URL != "https://open.spotify.com/track/abc123" {
			t.Errorf("unexpected spotify URL %s", record.Spotify.URL)
		}
		if !record.YouTube.Found() {
			t.Fatal("expected youtube entry")
		}
		if *record.YouTube.Views != 1000000 {
			t.Errorf("expected 1000000 views, got %d", *record.YouTube.Views)
		}
		if record.YouTube.URL != "https://music.youtube.com/watch?v=vid1" {
			t.Errorf("unexpected youtube URL %s", record.YouTube.URL)
		}
		if spotify.Calls != 1 || youtube.Calls != 1 {
			t.Errorf("expected one call per backend, got %d and %d", spotify.Calls, youtube.Calls)
		}
	})

	t.Run("spotify miss yields empty entry", func(t *testing.T) {
		spotify := &tu.MockSpotify{Err: shared.ErrTrackNotFound}
		youtube := &tu.MockYouTube{}

		fetcher := NewFetcher(spotify, youtube, quietLogger())
		record := fetcher.Fetch(ctx, "Nobody", "Nothing")

		if record.Spotify.Found() {
			t.Error("expected empty spotify entry on miss")
		}
		if record.Spotify != (SpotifyEntry{}) {
			t.Errorf("expected zero-value entry, got %+v", record.Spotify)
		}
	})

	t.Run("backend errors never propagate", func(t *testing.T) {
		spotify := &tu.MockSpotify{Err: errors.New("rate limited")}
		youtube := &tu.MockYouTube{Err: errors.New("proxy down")}

		fetcher := NewFetcher(spotify, youtube, quietLogger())
		record := fetcher.Fetch(ctx, "Radiohead", "Creep")

		if record.Spotify.Found() || record.YouTube.Found() {
			t.Error("expected both entries empty when backends fail")
		}
		if record.Artist != "Radiohead" || record.Title != "Creep" {
			t.Error("expected query preserved in record despite failures")
		}
	})

	t.Run("nil services yield empty entries", func(t *testing.T) {
		fetcher := NewFetcher(nil, nil, quietLogger())
		record := fetcher.Fetch(ctx, "Radiohead", "Creep")

		if record.Spotify.Found() || record.YouTube.Found() {
			t.Error("expected empty entries with no backends configured")
		}
	})

	t.Run("empty entries serialize as empty objects", func(t *testing.T) {
		fetcher := NewFetcher(nil, nil, quietLogger())
		record := fetcher.Fetch(ctx, "Radiohead", "Creep")

		data, err := json.Marshal(record)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		expected := `{"artist":"Radiohead","title":"Creep","spotify":{},"youtube_music":{}}`
		if string(data) != expected {
			t.Errorf("expected %s, got %s", expected, string(data))
		}
	})

	t.Run("repeated fetch is byte-identical for fixed responses", func(t *testing.T) {
		spotify := &tu.MockSpotify{Match: &services.SpotifyTrackMatch{
			Popularity:  42,
			ExternalURL: "https://open.spotify.com/track/xyz",
		}}
		youtube := &tu.MockYouTube{Results: []services.YouTubeResult{
			{ResultType: "song", VideoID: "v", Title: "Song", Artists: []services.YouTubeArtist{{Name: "Artist"}}, Views: tu.Int64(5)},
		}}

		fetcher := NewFetcher(spotify, youtube, quietLogger())

		first, err := json.Marshal(fetcher.Fetch(ctx, "Artist", "Song"))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		second, err := json.Marshal(fetcher.Fetch(ctx, "Artist", "Song"))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Errorf("expected identical output, got %s and %s", first, second)
		}
	})

	t.Run("youtube query joins artist and title", func(t *testing.T) {
		youtube := &capturingYouTube{}
		fetcher := NewFetcher(nil, youtube, quietLogger())

		fetcher.Fetch(ctx, "Radiohead", "No Surprises")

		if youtube.query != "Radiohead No Surprises" {
			t.Errorf("expected free-text query, got %q", youtube.query)
		}
	})
}

// capturingYouTube records the query string passed to SearchSongs.
type capturingYouTube struct {
	query string
}

func (c *capturingYouTube) SearchSongs(ctx context.Context, query string) ([]services.YouTubeResult, error) {
	c.query = query
	return nil, nil
}

func (c *capturingYouTube) Name() string { return "YouTube Music" }

func TestSelectYouTubeCandidate(t *testing.T) {
	song := func(id, artist, title string, views *int64) services.YouTubeResult {
		return services.YouTubeResult{
			ResultType: "song",
			VideoID:    id,
			Title:      title,
			Artists:    []services.YouTubeArtist{{Name: artist}},
			Views:      views,
		}
	}
	video := func(id, artist, title string, views *int64) services.YouTubeResult {
		r := song(id, artist, title, views)
		r.ResultType = "video"
		return r
	}

	t.Run("exact song match wins over earlier fallback", func(t *testing.T) {
		results := []services.YouTubeResult{
			song("cover", "Cover Band", "Creep", tu.Int64(999)),
			song("orig", "Radiohead", "Creep", tu.Int64(500)),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		if entry.URL != "https://music.youtube.com/watch?v=orig" {
			t.Errorf("expected exact match to win, got %s", entry.URL)
		}
		if *entry.Views != 500 {
			t.Errorf("expected views 500, got %d", *entry.Views)
		}
	})

	t.Run("exact video match uses video URL", func(t *testing.T) {
		results := []services.YouTubeResult{
			song("other", "Someone Else", "Creep", tu.Int64(10)),
			video("mv", "Radiohead", "Creep", tu.Int64(200)),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		if entry.URL != "https://www.youtube.com/watch?v=mv" {
			t.Errorf("expected video URL, got %s", entry.URL)
		}
	})

	t.Run("song match beats video match regardless of order", func(t *testing.T) {
		results := []services.YouTubeResult{
			video("mv", "Radiohead", "Creep", tu.Int64(9999)),
			song("s", "Radiohead", "Creep", tu.Int64(1)),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		if entry.URL != "https://music.youtube.com/watch?v=s" {
			t.Errorf("expected song tier to win, got %s", entry.URL)
		}
	})

	t.Run("fallback picks first song with views", func(t *testing.T) {
		results := []services.YouTubeResult{
			song("noviews", "Cover Band", "Creep", nil),
			video("mv", "Cover Band", "Creep", tu.Int64(5)),
			song("withviews", "Tribute Act", "Creep", tu.Int64(42)),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		if entry.URL != "https://music.youtube.com/watch?v=withviews" {
			t.Errorf("expected fallback song, got %s", entry.URL)
		}
		if *entry.Views != 42 {
			t.Errorf("expected views 42, got %d", *entry.Views)
		}
	})

	t.Run("empty results yield empty entry", func(t *testing.T) {
		entry := selectYouTubeCandidate(nil, "Radiohead", "Creep")
		if entry != (YouTubeEntry{}) {
			t.Errorf("expected zero value, got %+v", entry)
		}
	})

	t.Run("no candidate in any tier yields empty entry", func(t *testing.T) {
		results := []services.YouTubeResult{
			song("noviews", "Cover Band", "Creep", nil),
			video("mv", "Cover Band", "Creep", tu.Int64(5)),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")
		if entry.Found() {
			t.Errorf("expected empty entry, got %+v", entry)
		}
	})

	t.Run("exact match without view count yields URL-only entry", func(t *testing.T) {
		results := []services.YouTubeResult{
			song("s", "Radiohead", "Creep", nil),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		if !entry.Found() {
			t.Fatal("expected entry with URL")
		}
		if entry.Views != nil {
			t.Errorf("expected nil views, got %d", *entry.Views)
		}
	})

	t.Run("matching is byte exact", func(t *testing.T) {
		results := []services.YouTubeResult{
			song("lower", "radiohead", "creep", tu.Int64(1)),
			song("padded", "Radiohead ", "Creep", tu.Int64(2)),
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		// both fail the exact tiers but the first song has views
		if entry.URL != "https://music.youtube.com/watch?v=lower" {
			t.Errorf("expected fallback, got %s", entry.URL)
		}
	})

	t.Run("only the first listed artist is compared", func(t *testing.T) {
		results := []services.YouTubeResult{
			{
				ResultType: "song",
				VideoID:    "feat",
				Title:      "Creep",
				Artists:    []services.YouTubeArtist{{Name: "Someone"}, {Name: "Radiohead"}},
				Views:      tu.Int64(3),
			},
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")

		// not an exact match, so the fallback tier picks it up
		if entry.URL != "https://music.youtube.com/watch?v=feat" {
			t.Errorf("expected fallback selection, got %s", entry.URL)
		}
	})

	t.Run("result without artists never matches exactly", func(t *testing.T) {
		results := []services.YouTubeResult{
			{ResultType: "song", VideoID: "bare", Title: "Creep", Views: nil},
		}

		entry := selectYouTubeCandidate(results, "Radiohead", "Creep")
		if entry.Found() {
			t.Errorf("expected empty entry, got %+v", entry)
		}
	})
}

func TestSummarize(t *testing.T) {
	pop := tu.Int(50)
	views := tu.Int64(100)

	records := []Record{
		{Artist: "A", Title: "1", Spotify: SpotifyEntry{Popularity: pop, URL: "u"}, YouTube: YouTubeEntry{Views: views, URL: "u"}},
		{Artist: "B", Title: "2", Spotify: SpotifyEntry{Popularity: pop, URL: "u"}},
		{Artist: "C", Title: "3"},
	}

	summary := Summarize(records)

	if summary.Total != 3 {
		t.Errorf("expected total 3, got %d", summary.Total)
	}
	if summary.SpotifyHits != 2 {
		t.Errorf("expected 2 spotify hits, got %d", summary.SpotifyHits)
	}
	if summary.YouTubeHits != 1 {
		t.Errorf("expected 1 youtube hit, got %d", summary.YouTubeHits)
	}
	if summary.HitRate < 66.6 || summary.HitRate > 66.7 {
		t.Errorf("expected hit rate ~66.67, got %f", summary.HitRate)
	}

	t.Run("empty batch", func(t *testing.T) {
		summary := Summarize(nil)
		if summary.Total != 0 || summary.HitRate != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})
}

func TestFetchAll(t *testing.T) {
	ctx := context.Background()

	spotify := &tu.MockSpotify{Match: &services.SpotifyTrackMatch{Popularity: 10, ExternalURL: "u"}}
	youtube := &tu.MockYouTube{}
	fetcher := NewFetcher(spotify, youtube, quietLogger())

	queries := []Query{
		{Artist: "Radiohead", Title: "Creep"},
		{Artist: "Radiohead", Title: "No Surprises"},
	}

	progress := make(chan ProgressUpdate, len(queries)*2+1)
	records := fetcher.FetchAll(ctx, queries, progress)
	close(progress)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Creep" || records[1].Title != "No Surprises" {
		t.Error("expected records in query order")
	}
	if spotify.Calls != 2 {
		t.Errorf("expected 2 spotify calls, got %d", spotify.Calls)
	}

	var updates []ProgressUpdate
	for u := range progress {
		updates = append(updates, u)
	}

	if len(updates) != 5 {
		t.Fatalf("expected 5 progress updates, got %d", len(updates))
	}
	if updates[0].Phase != FetchTrack || updates[1].Phase != TrackResolved {
		t.Error("expected fetch/resolved pair per track")
	}
	last := updates[len(updates)-1]
	if last.Phase != BatchDone {
		t.Errorf("expected final batch_done update, got %s", last.Phase)
	}
	if summary, ok := last.Data.(Summary); !ok || summary.Total != 2 {
		t.Errorf("expected summary data on final update, got %+v", last.Data)
	}

	t.Run("nil progress channel is allowed", func(t *testing.T) {
		records := fetcher.FetchAll(ctx, queries, nil)
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	})
}

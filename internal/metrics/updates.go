package metrics

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a batch fetch.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchTrack Phase = iota
	TrackResolved
	BatchDone
)

func (p Phase) String() string {
	switch p {
	case FetchTrack:
		return "fetch_track"
	case TrackResolved:
		return "track_resolved"
	case BatchDone:
		return "batch_done"
	default:
		return ""
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default so progress reporting never stalls a fetch.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func fetchTrackUpdate(step, total int, q Query) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTrack,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching: %s", step, total, q),
		Data:    q,
	}
}

func trackResolvedUpdate(step, total int, record Record) ProgressUpdate {
	status := ""
	if record.Spotify.Found() {
		status += "spotify ✓"
	} else {
		status += "spotify ✗"
	}
	if record.YouTube.Found() {
		status += " · youtube ✓"
	} else {
		status += " · youtube ✗"
	}

	return ProgressUpdate{
		Phase:   TrackResolved,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s (%s)", step, total, record.Artist, record.Title, status),
		Data:    record,
	}
}

func batchDoneUpdate(total int, summary Summary) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BatchDone,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Done: %d tracks, %d Spotify hits, %d YouTube Music hits", summary.Total, summary.SpotifyHits, summary.YouTubeHits),
		Data:    summary,
	}
}

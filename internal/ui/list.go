package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/statx/internal/metrics"
)

// queryItem adapts a [metrics.Query] to the bubbles list item interface.
type queryItem struct {
	query metrics.Query
}

func (i queryItem) Title() string       { return i.query.Title }
func (i queryItem) Description() string { return i.query.Artist }
func (i queryItem) FilterValue() string { return i.query.String() }

// recordItem adapts a resolved [metrics.Record] to the bubbles list item interface.
type recordItem struct {
	record metrics.Record
}

func (i recordItem) Title() string {
	return fmt.Sprintf("%s - %s", i.record.Artist, i.record.Title)
}

func (i recordItem) Description() string {
	spotify := "spotify ✗"
	if i.record.Spotify.Found() {
		spotify = fmt.Sprintf("popularity %d", *i.record.Spotify.Popularity)
	}

	youtube := "youtube ✗"
	if i.record.YouTube.Found() {
		if i.record.YouTube.Views != nil {
			youtube = fmt.Sprintf("%d views", *i.record.YouTube.Views)
		} else {
			youtube = "matched, views unavailable"
		}
	}

	return fmt.Sprintf("%s · %s", spotify, youtube)
}

func (i recordItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.record.Artist, i.record.Title)
}

func newQueryList(queries []metrics.Query) list.Model {
	items := make([]list.Item, len(queries))
	for i, q := range queries {
		items[i] = queryItem{query: q}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Tracks"
	l.SetShowHelp(false)
	return l
}

func newRecordList(records []metrics.Record) list.Model {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = recordItem{record: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Results"
	l.SetShowHelp(false)
	return l
}

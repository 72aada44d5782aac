package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/statx/internal/formatter"
	"github.com/desertthunder/statx/internal/metrics"
	"github.com/desertthunder/statx/internal/shared"
)

// Fetch resolves metrics for a single track and prints the merged record.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	artist := cmd.String("artist")
	title := cmd.String("title")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching track metrics", "artist", artist, "title", title)

	record := r.fetcher.Fetch(ctx, artist, title)

	if cmd.Bool("save") {
		if err := r.saveReport(cmd.String("label"), []metrics.Record{record}); err != nil {
			return err
		}
	}

	if useJSON {
		return r.writeJSON(record, pretty)
	}

	r.writePlain("%s - %s\n", record.Artist, record.Title)
	if record.Spotify.Found() {
		r.writePlain("Spotify popularity: %d (%s)\n", *record.Spotify.Popularity, record.Spotify.URL)
	} else {
		r.writePlain("Spotify: not found\n")
	}
	if record.YouTube.Found() {
		if record.YouTube.Views != nil {
			r.writePlain("YouTube Music views: %d (%s)\n", *record.YouTube.Views, record.YouTube.URL)
		} else {
			r.writePlain("YouTube Music: matched, no view count (%s)\n", record.YouTube.URL)
		}
	} else {
		r.writePlain("YouTube Music: not found\n")
	}

	return nil
}

// Batch resolves metrics for every track in a tracklist file.
//
// Output goes to stdout unless --output is set. With --save the report and
// its records are persisted to the configured database.
func (r *Runner) Batch(ctx context.Context, cmd *cli.Command) error {
	tracklistPath := cmd.StringArg("tracklist")
	format := cmd.String("format")
	outputPath := cmd.String("output")
	label := cmd.String("label")
	save := cmd.Bool("save")
	pretty := cmd.Bool("pretty")

	if tracklistPath == "" {
		return fmt.Errorf("%w: tracklist path is required", shared.ErrMissingArgument)
	}

	queries, err := metrics.LoadTracklist(tracklistPath)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("%w: tracklist %s contains no tracks", shared.ErrInvalidInput, tracklistPath)
	}

	r.logger.Info("starting batch fetch", "tracks", len(queries), "tracklist", tracklistPath)

	records := r.fetcher.FetchAll(ctx, queries, nil)
	summary := metrics.Summarize(records)

	r.logger.Info("batch complete",
		"total", summary.Total,
		"spotify_hits", summary.SpotifyHits,
		"youtube_hits", summary.YouTubeHits,
	)

	if save {
		if err := r.saveReport(label, records); err != nil {
			return err
		}
	}

	if outputPath != "" {
		path, err := formatter.WriteExport(format, label, outputPath, records)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Report written to %s\n", path)
	}

	if format == "json" {
		return r.writeJSON(records, pretty)
	}

	data, err := formatter.Export(format, label, records)
	if err != nil {
		return err
	}
	return r.writePlain("%s", string(data))
}

// saveReport persists a batch under the given label.
func (r *Runner) saveReport(label string, records []metrics.Record) error {
	store, db, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := store.SaveBatch(label, records)
	if err != nil {
		return err
	}

	r.logger.Info("report saved", "id", report.ID(), "label", report.Label())
	return nil
}

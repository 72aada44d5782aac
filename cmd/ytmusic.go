package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/statx/internal/shared"
)

// YTMusicSearch searches the YouTube Music proxy for songs.
func (r *Runner) YTMusicSearch(ctx context.Context, cmd *cli.Command) error {
	if r.youtube == nil {
		return fmt.Errorf("%w: YouTube Music service not initialized", shared.ErrServiceUnavailable)
	}

	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	r.logger.Info("searching youtube music", "query", query)

	results, err := r.youtube.SearchSongs(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(results, pretty)
	}

	r.writePlain("Found %d result(s):\n\n", len(results))
	for i, result := range results {
		artist := ""
		if len(result.Artists) > 0 {
			artist = result.Artists[0].Name
		}

		r.writePlain("%d. [%s] %s - %s\n", i+1, result.ResultType, artist, result.Title)
		r.writePlain("   ID: %s\n", result.VideoID)
		if result.Views != nil {
			r.writePlain("   Views: %d\n", *result.Views)
		}
	}

	return nil
}

// YTMusicStatus checks proxy availability by calling the /health endpoint.
func (r *Runner) YTMusicStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking youtube music proxy status")

	if err := r.api.Health(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	return r.writePlain("✓ YouTube Music proxy is healthy\n")
}

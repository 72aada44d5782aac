package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/statx/internal/services"
	"github.com/desertthunder/statx/internal/shared"
)

// SpotifyAuth verifies the configured Spotify credentials by running the
// client-credentials flow once.
func (r *Runner) SpotifyAuth(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized, check config.toml credentials", shared.ErrServiceUnavailable)
	}

	svc, ok := r.spotify.(*services.SpotifyService)
	if !ok {
		return fmt.Errorf("%w: spotify client does not support authentication checks", shared.ErrInvalidArgument)
	}

	r.logger.Info("verifying spotify credentials")

	if err := svc.Authenticate(ctx); err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			return err
		}
		return fmt.Errorf("%w: %v", shared.ErrInvalidCredentials, err)
	}

	r.logger.Info("spotify authentication successful")
	return r.writePlain("✓ Spotify credentials verified\n")
}

// SpotifySearch prints the top Spotify match for an artist/title pair.
func (r *Runner) SpotifySearch(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	artist := cmd.String("artist")
	title := cmd.String("title")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("searching spotify", "artist", artist, "title", title)

	match, err := r.spotify.SearchTrack(ctx, artist, title)
	if err != nil {
		if errors.Is(err, shared.ErrTrackNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(match, pretty)
	}

	r.writePlain("Popularity: %d\n", match.Popularity)
	r.writePlain("URL: %s\n", match.ExternalURL)
	if match.Album != "" {
		r.writePlain("Album: %s\n", match.Album)
	}
	if match.ReleaseDate != "" {
		r.writePlain("Released: %s\n", match.ReleaseDate)
	}

	return nil
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/statx/internal/metrics"
	"github.com/desertthunder/statx/internal/shared"
	"github.com/desertthunder/statx/internal/ui"
)

// TUI launches the interactive terminal UI for a tracklist fetch.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	tracklistPath := cmd.StringArg("tracklist")
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

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/statx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.fetcher, queries)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

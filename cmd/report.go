package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/statx/internal/formatter"
	"github.com/desertthunder/statx/internal/repositories"
	"github.com/desertthunder/statx/internal/shared"
)

// ReportList lists saved reports, optionally filtered by label.
func (r *Runner) ReportList(ctx context.Context, cmd *cli.Command) error {
	label := cmd.String("label")
	useJSON := cmd.Bool("json")

	_, db, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	reports, err := repositories.NewReportRepository(db).List(map[string]any{"label": label})
	if err != nil {
		return err
	}

	if useJSON {
		type reportView struct {
			ID          string `json:"id"`
			Sequence    int    `json:"sequence"`
			Label       string `json:"label"`
			Total       int    `json:"total"`
			SpotifyHits int    `json:"spotify_hits"`
			YouTubeHits int    `json:"youtube_hits"`
			CreatedAt   string `json:"created_at"`
		}

		views := make([]reportView, len(reports))
		for i, report := range reports {
			summary := report.Summary()
			views[i] = reportView{
				ID:          report.ID(),
				Sequence:    report.Sequence(),
				Label:       report.Label(),
				Total:       summary.Total,
				SpotifyHits: summary.SpotifyHits,
				YouTubeHits: summary.YouTubeHits,
				CreatedAt:   report.CreatedAt().Format("2006-01-02 15:04:05"),
			}
		}
		return r.writeJSON(views, true)
	}

	if len(reports) == 0 {
		return r.writePlain("No saved reports\n")
	}

	r.writePlain("Found %d report(s):\n\n", len(reports))
	for _, report := range reports {
		summary := report.Summary()
		name := report.Label()
		if name == "" {
			name = "(unlabelled)"
		}

		r.writePlain("%d. %s\n", report.Sequence(), name)
		r.writePlain("   ID: %s\n", report.ID())
		r.writePlain("   Tracks: %d (spotify %d, youtube %d)\n", summary.Total, summary.SpotifyHits, summary.YouTubeHits)
		r.writePlain("   Created: %s\n", report.CreatedAt().Format("2006-01-02 15:04:05"))
	}

	return nil
}

// ReportShow prints the records of a saved report.
func (r *Runner) ReportShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if id == "" {
		return fmt.Errorf("%w: report ID is required", shared.ErrMissingArgument)
	}

	store, db, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := repositories.NewReportRepository(db).Get(id)
	if err != nil {
		return err
	}

	records, err := store.Records(report.ID())
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(records, pretty)
	}

	data, err := formatter.ExportToText(report.Label(), records)
	if err != nil {
		return err
	}
	return r.writePlain("%s", string(data))
}

// ReportExport renders a saved report to a file in the requested format.
func (r *Runner) ReportExport(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	format := cmd.String("format")
	outputPath := cmd.String("output")

	if id == "" {
		return fmt.Errorf("%w: report ID is required", shared.ErrMissingArgument)
	}

	store, db, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := repositories.NewReportRepository(db).Get(id)
	if err != nil {
		return err
	}

	records, err := store.Records(report.ID())
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(format, report.Label(), outputPath, records)
	if err != nil {
		return err
	}

	r.logger.Info("report exported", "id", report.ID(), "path", path, "format", format)
	return r.writePlain("✓ Report exported to %s\n", path)
}

// ReportDelete soft-deletes a saved report.
func (r *Runner) ReportDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: report ID is required", shared.ErrMissingArgument)
	}

	_, db, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewReportRepository(db).Delete(id); err != nil {
		return err
	}

	r.logger.Info("report deleted", "id", id)
	return r.writePlain("✓ Report %s deleted\n", id)
}

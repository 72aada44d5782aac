// package formatter provides functions to export fetch reports to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/statx/internal/metrics"
	"github.com/desertthunder/statx/internal/shared"
)

// ExportToCSV converts records to CSV with columns: Artist, Title, SpotifyPopularity, SpotifyURL, YouTubeViews, YouTubeURL
func ExportToCSV(records []metrics.Record) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Artist", "Title", "SpotifyPopularity", "SpotifyURL", "YouTubeViews", "YouTubeURL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range records {
		popularity := ""
		if record.Spotify.Popularity != nil {
			popularity = strconv.Itoa(*record.Spotify.Popularity)
		}

		views := ""
		if record.YouTube.Views != nil {
			views = strconv.FormatInt(*record.YouTube.Views, 10)
		}

		row := []string{
			record.Artist,
			record.Title,
			popularity,
			record.Spotify.URL,
			views,
			record.YouTube.URL,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts records to a Markdown table with a summary header
func ExportToMarkdown(label string, records []metrics.Record) ([]byte, error) {
	var buf bytes.Buffer

	if label == "" {
		label = "Streaming metrics"
	}

	summary := metrics.Summarize(records)

	buf.WriteString(fmt.Sprintf("# %s\n\n", label))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", summary.Total))
	buf.WriteString(fmt.Sprintf("**Spotify hits**: %d\n", summary.SpotifyHits))
	buf.WriteString(fmt.Sprintf("**YouTube Music hits**: %d\n\n", summary.YouTubeHits))

	buf.WriteString("| Artist | Title | Popularity | Views |\n")
	buf.WriteString("|--------|-------|------------|-------|\n")

	for _, record := range records {
		popularity := "—"
		if record.Spotify.Popularity != nil {
			popularity = fmt.Sprintf("[%d](%s)", *record.Spotify.Popularity, record.Spotify.URL)
		}

		views := "—"
		if record.YouTube.Found() {
			if record.YouTube.Views != nil {
				views = fmt.Sprintf("[%d](%s)", *record.YouTube.Views, record.YouTube.URL)
			} else {
				views = fmt.Sprintf("[n/a](%s)", record.YouTube.URL)
			}
		}

		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", record.Artist, record.Title, popularity, views))
	}

	return buf.Bytes(), nil
}

// ExportToText converts records to plain text format
func ExportToText(label string, records []metrics.Record) ([]byte, error) {
	var buf bytes.Buffer

	if label != "" {
		buf.WriteString(fmt.Sprintf("Report: %s\n", label))
	}
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(records)))

	for i, record := range records {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, record.Artist, record.Title))

		if record.Spotify.Found() {
			buf.WriteString(fmt.Sprintf("   Spotify popularity: %d (%s)\n", *record.Spotify.Popularity, record.Spotify.URL))
		} else {
			buf.WriteString("   Spotify: not found\n")
		}

		if record.YouTube.Found() {
			if record.YouTube.Views != nil {
				buf.WriteString(fmt.Sprintf("   YouTube Music views: %d (%s)\n", *record.YouTube.Views, record.YouTube.URL))
			} else {
				buf.WriteString(fmt.Sprintf("   YouTube Music: matched, no view count (%s)\n", record.YouTube.URL))
			}
		} else {
			buf.WriteString("   YouTube Music: not found\n")
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON serializes records with the wire keys used everywhere else
// (artist, title, spotify, youtube_music).
func ExportToJSON(records []metrics.Record, pretty bool) ([]byte, error) {
	return shared.MarshalJSON(records, pretty)
}

// Export renders records in the named format: json, csv, md or text.
func Export(format, label string, records []metrics.Record) ([]byte, error) {
	switch format {
	case "json":
		return ExportToJSON(records, true)
	case "csv":
		return ExportToCSV(records)
	case "md", "markdown":
		return ExportToMarkdown(label, records)
	case "text", "txt":
		return ExportToText(label, records)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// WriteExport renders records in the named format and writes them to path.
//
// Defaults to report.{ext} in the current directory when path is empty.
func WriteExport(format, label, path string, records []metrics.Record) (string, error) {
	data, err := Export(format, label, records)
	if err != nil {
		return "", err
	}

	if path == "" {
		ext := format
		if format == "markdown" {
			ext = "md"
		}
		if format == "text" {
			ext = "txt"
		}
		path = "report." + ext
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

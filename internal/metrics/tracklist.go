package metrics

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/statx/internal/shared"
)

// LoadTracklist reads queries from a tracklist file. CSV files (by extension)
// use artist/title columns; anything else is parsed line by line as
// "Artist - Title".
func LoadTracklist(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tracklist: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSVTracklist(f)
	}
	return ParseTracklist(f)
}

// ParseTracklist reads "Artist - Title" lines. Blank lines and lines starting
// with # are skipped. Only the first " - " separates artist from title, so
// titles may themselves contain the separator.
func ParseTracklist(r io.Reader) ([]Query, error) {
	var queries []Query

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		artist, title, found := strings.Cut(text, " - ")
		if !found || artist == "" || title == "" {
			return nil, fmt.Errorf("%w: line %d: expected \"Artist - Title\", got %q", shared.ErrInvalidInput, line, text)
		}

		queries = append(queries, Query{Artist: artist, Title: title})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tracklist: %w", err)
	}

	return queries, nil
}

// ParseCSVTracklist reads queries from two-column CSV. A leading artist,title
// header row is skipped when present.
func ParseCSVTracklist(r io.Reader) ([]Query, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	var queries []Query
	for i, row := range rows {
		artist := strings.TrimSpace(row[0])
		title := strings.TrimSpace(row[1])

		if i == 0 && strings.EqualFold(artist, "artist") && strings.EqualFold(title, "title") {
			continue
		}
		if artist == "" || title == "" {
			return nil, fmt.Errorf("%w: row %d: empty artist or title", shared.ErrInvalidInput, i+1)
		}

		queries = append(queries, Query{Artist: artist, Title: title})
	}

	return queries, nil
}

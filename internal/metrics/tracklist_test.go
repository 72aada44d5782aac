package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/statx/internal/shared"
)

func TestParseTracklist(t *testing.T) {
	t.Run("parses artist and title lines", func(t *testing.T) {
		input := "Radiohead - Creep\nPortishead - Glory Box\n"

		queries, err := ParseTracklist(strings.NewReader(input))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(queries) != 2 {
			t.Fatalf("expected 2 queries, got %d", len(queries))
		}
		if queries[0].Artist != "Radiohead" || queries[0].Title != "Creep" {
			t.Errorf("unexpected first query %+v", queries[0])
		}
	})

	t.Run("skips blank lines and comments", func(t *testing.T) {
		input := "# my tracklist\n\nRadiohead - Creep\n\n"

		queries, err := ParseTracklist(strings.NewReader(input))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(queries) != 1 {
			t.Errorf("expected 1 query, got %d", len(queries))
		}
	})

	t.Run("only first separator splits", func(t *testing.T) {
		queries, err := ParseTracklist(strings.NewReader("Nine Inch Nails - La Mer - Into the Void\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if queries[0].Artist != "Nine Inch Nails" {
			t.Errorf("unexpected artist %q", queries[0].Artist)
		}
		if queries[0].Title != "La Mer - Into the Void" {
			t.Errorf("unexpected title %q", queries[0].Title)
		}
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		_, err := ParseTracklist(strings.NewReader("just a title\n"))
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestParseCSVTracklist(t *testing.T) {
	t.Run("parses rows with header", func(t *testing.T) {
		input := "artist,title\nRadiohead,Creep\nPortishead,Glory Box\n"

		queries, err := ParseCSVTracklist(strings.NewReader(input))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(queries) != 2 {
			t.Fatalf("expected 2 queries, got %d", len(queries))
		}
	})

	t.Run("parses rows without header", func(t *testing.T) {
		queries, err := ParseCSVTracklist(strings.NewReader("Radiohead,Creep\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(queries) != 1 || queries[0].Artist != "Radiohead" {
			t.Errorf("unexpected queries %+v", queries)
		}
	})

	t.Run("rejects rows with empty fields", func(t *testing.T) {
		_, err := ParseCSVTracklist(strings.NewReader("Radiohead,\n"))
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects wrong column count", func(t *testing.T) {
		_, err := ParseCSVTracklist(strings.NewReader("Radiohead,Creep,1992\n"))
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestLoadTracklist(t *testing.T) {
	t.Run("dispatches on extension", func(t *testing.T) {
		dir := t.TempDir()

		textPath := filepath.Join(dir, "tracks.txt")
		if err := os.WriteFile(textPath, []byte("Radiohead - Creep\n"), 0644); err != nil {
			t.Fatalf("failed to write tracklist: %v", err)
		}

		csvPath := filepath.Join(dir, "tracks.csv")
		if err := os.WriteFile(csvPath, []byte("artist,title\nRadiohead,Creep\n"), 0644); err != nil {
			t.Fatalf("failed to write tracklist: %v", err)
		}

		for _, path := range []string{textPath, csvPath} {
			queries, err := LoadTracklist(path)
			if err != nil {
				t.Fatalf("expected no error for %s, got %v", path, err)
			}
			if len(queries) != 1 || queries[0].Title != "Creep" {
				t.Errorf("unexpected queries for %s: %+v", path, queries)
			}
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTracklist("/nonexistent/tracks.txt"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

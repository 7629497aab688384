package formatter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
	th "github.com/desertthunder/moviefav/internal/testing"
)

func testExport() *MovieExport {
	return &MovieExport{
		Title: "Favorites",
		User:  &models.User{ID: 4, Name: "Alan", Favorites: []int{1}},
		Movies: []models.Movie{
			{ID: 1, Title: "Spirited Away", ReleaseDate: "2001-07-20", VoteAverage: 8.5, Overview: "Spirits."},
			{ID: 2, Title: "Heat, Part One", VoteAverage: 7.9},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Title,Year,Rating,Favorite") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Spirited Away,2001,8.5,true") {
			t.Errorf("CSV missing favorite row, got: %s", output)
		}
		if !strings.Contains(output, `2,"Heat, Part One",,7.9,false`) {
			t.Errorf("CSV should quote titles with commas, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Favorites",
			"**Movies**: 2",
			"**User**: Alan",
			"1. ★ Spirited Away (2001) [8.5]",
			"   > Spirits.",
			"2. Heat, Part One [7.9]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Movies: 2") {
			t.Errorf("text missing count, got:\n%s", output)
		}
		if !strings.Contains(output, "★    1  Spirited Away (2001)") {
			t.Errorf("text missing favorite marker, got:\n%s", output)
		}
	})

	t.Run("Without User", func(t *testing.T) {
		export := testExport()
		export.User = nil
		export.Title = ""

		data, err := ExportToText(export)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		if strings.Contains(string(data), "★") {
			t.Errorf("expected no favorite markers without a user, got:\n%s", data)
		}
		if !strings.HasPrefix(string(data), "Movies\n") {
			t.Errorf("expected default title, got:\n%s", data)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(testExport())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var rows []map[string]any
		if err := json.Unmarshal(data, &rows); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0]["movie_id"] != float64(1) || rows[0]["favorite"] != true {
			t.Errorf("unexpected first row: %v", rows[0])
		}
	})

	t.Run("Empty JSON Is Array", func(t *testing.T) {
		data, err := ExportToJSON(&MovieExport{})
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("expected [], got %s", data)
		}
	})
}

func TestRender(t *testing.T) {
	for _, format := range []string{"", "text", "markdown", "MD", "csv", "json"} {
		t.Run(format, func(t *testing.T) {
			if _, err := Render(testExport(), format); err != nil {
				t.Errorf("Render(%q) failed: %v", format, err)
			}
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		if _, err := Render(testExport(), "yaml"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	t.Run("Writes File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movies.csv")
		if err := WriteExport(testExport(), FormatCSV, path); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.HasPrefix(content, "ID,Title") {
			t.Errorf("unexpected file content: %s", content)
		}
	})

	t.Run("Unwritable Path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "movies.txt")
		if err := WriteExport(testExport(), FormatText, path); err == nil {
			t.Error("expected error for missing directory")
		}
		if _, err := os.Stat(path); err == nil {
			t.Error("file should not exist")
		}
	})
}

// package formatter renders movie lists as plain text, Markdown, CSV or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
)

// Format names accepted by [Render].
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// MovieExport is a titled movie list. When User is set, rows are marked with the user's favorites.
type MovieExport struct {
	Title  string
	User   *models.User
	Movies []models.Movie
}

// movieRow is the JSON shape of one exported movie.
type movieRow struct {
	models.Movie
	Favorite bool `json:"favorite"`
}

// Render dispatches to the exporter for format.
func Render(export *MovieExport, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return ExportToText(export)
	case FormatMarkdown, "md":
		return ExportToMarkdown(export)
	case FormatCSV:
		return ExportToCSV(export)
	case FormatJSON:
		return ExportToJSON(export)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// ExportToCSV converts a MovieExport to CSV format with columns: ID, Title, Year, Rating, Favorite
func ExportToCSV(export *MovieExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Year", "Rating", "Favorite"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range export.Movies {
		record := []string{
			strconv.Itoa(movie.ID),
			movie.Title,
			movie.Year(),
			strconv.FormatFloat(movie.VoteAverage, 'f', 1, 64),
			strconv.FormatBool(export.User.HasFavorite(movie.ID)),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a MovieExport to a Markdown document with one list item per movie
func ExportToMarkdown(export *MovieExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", export.title())
	fmt.Fprintf(&buf, "**Movies**: %d\n", len(export.Movies))
	if export.User != nil {
		fmt.Fprintf(&buf, "**User**: %s\n", export.User.Name)
		fmt.Fprintf(&buf, "**Favorites**: %d\n", len(export.User.Favorites))
	}
	buf.WriteString("\n")

	for i, movie := range export.Movies {
		fmt.Fprintf(&buf, "%d. %s%s", i+1, markdownStar(export.User.HasFavorite(movie.ID)), movie.Title)
		if year := movie.Year(); year != "" {
			fmt.Fprintf(&buf, " (%s)", year)
		}
		fmt.Fprintf(&buf, " [%.1f]\n", movie.VoteAverage)
		if movie.Overview != "" {
			fmt.Fprintf(&buf, "   > %s\n", movie.Overview)
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a MovieExport to plain text format
func ExportToText(export *MovieExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", export.title())
	fmt.Fprintf(&buf, "Movies: %d\n\n", len(export.Movies))

	for _, movie := range export.Movies {
		mark := " "
		if export.User.HasFavorite(movie.ID) {
			mark = "★"
		}
		fmt.Fprintf(&buf, "%s %4d  %s", mark, movie.ID, movie.Title)
		if year := movie.Year(); year != "" {
			fmt.Fprintf(&buf, " (%s)", year)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a MovieExport to an indented JSON array, each movie carrying a favorite flag
func ExportToJSON(export *MovieExport) ([]byte, error) {
	rows := make([]movieRow, 0, len(export.Movies))
	for _, movie := range export.Movies {
		rows = append(rows, movieRow{Movie: movie, Favorite: export.User.HasFavorite(movie.ID)})
	}
	return shared.MarshalJSON(rows, true)
}

// WriteExport renders export in format and writes it to path.
func WriteExport(export *MovieExport, format, path string) error {
	data, err := Render(export, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func (e *MovieExport) title() string {
	if e.Title == "" {
		return "Movies"
	}
	return e.Title
}

func markdownStar(favorite bool) string {
	if favorite {
		return "★ "
	}
	return ""
}

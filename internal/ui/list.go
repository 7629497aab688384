package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/moviefav/internal/models"
)

var _ list.Item = movieItem{}

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie    models.Movie
	favorite bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	if i.favorite {
		return styles.star.Render("★") + " " + i.movie.Title
	}
	return "  " + i.movie.Title
}

func (i movieItem) Description() string {
	var parts []string
	if year := i.movie.Year(); year != "" {
		parts = append(parts, year)
	}
	if i.movie.VoteAverage > 0 {
		parts = append(parts, fmt.Sprintf("%.1f", i.movie.VoteAverage))
	}
	if i.movie.Overview != "" {
		parts = append(parts, i.movie.Overview)
	}
	return strings.Join(parts, " • ")
}

package main

import (
	"context"

	"github.com/desertthunder/moviefav/internal/formatter"
	"github.com/desertthunder/moviefav/internal/store"
	"github.com/urfave/cli/v3"
)

// MoviesList prints the displayed movies: the user's favorites, or the whole catalog with --all.
//
// Without a session every movie is shown.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadSession(); err != nil {
		return err
	}

	movies, err := r.client.Movies(ctx)
	if err != nil {
		return err
	}
	r.store.Dispatch(store.SetMovies{Movies: movies})

	showAll := cmd.Bool("all")
	if !showAll && r.store.ReadState().User == nil {
		r.logger.Info("not logged in, listing every movie")
		showAll = true
	}
	r.store.Dispatch(store.SetShowAllMovies{ShowAll: showAll})

	state := r.store.State()
	title := "Favorite Movies"
	if state.ShowAllMovies {
		title = "All Movies"
	}
	export := &formatter.MovieExport{Title: title, User: state.User, Movies: state.Displayed()}

	format := cmd.String("format")
	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(export, format, path); err != nil {
			return err
		}
		r.logger.Info("export written", "path", path, "format", format)
		return r.writePlain("✓ Wrote %d movies to %s\n", len(export.Movies), path)
	}

	data, err := formatter.Render(export, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

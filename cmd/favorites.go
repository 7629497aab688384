package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/moviefav/internal/favorites"
	"github.com/desertthunder/moviefav/internal/formatter"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
	"github.com/urfave/cli/v3"
)

// FavoritesList fetches the user's favorites from the API, refreshes the cached session with them and prints them.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadSession(); err != nil {
		return err
	}
	if err := r.requireSession(); err != nil {
		return err
	}

	ids, err := r.client.Favorites(ctx)
	if err != nil {
		return err
	}

	user := r.store.ReadState().User.Clone()
	user.Favorites = ids
	r.store.Dispatch(store.SetUser{User: user})

	if cmd.Bool("json") {
		return r.writeJSON(services.FavoritesResponse{Favorites: ids}, true)
	}

	movies, err := r.client.Movies(ctx)
	if err != nil {
		return err
	}

	data, err := formatter.ExportToText(&formatter.MovieExport{
		Title:  fmt.Sprintf("Favorites of %s", user.Name),
		User:   user,
		Movies: models.FilterFavorites(movies, user),
	})
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// FavoritesToggle flips the favorite status of one movie.
//
// Without a session nothing changes and the redirect route is printed instead.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("movie-id")
	if arg == "" {
		return fmt.Errorf("%w: movie-id", shared.ErrMissingArgument)
	}
	movieID, err := strconv.Atoi(arg)
	if err != nil || movieID <= 0 {
		return fmt.Errorf("%w: movie-id must be a positive integer, got %q", shared.ErrInvalidArgument, arg)
	}

	if err := r.loadSession(); err != nil {
		return err
	}

	movie := models.Movie{ID: movieID}
	if r.store.ReadState().User != nil {
		if movie, err = r.findMovie(ctx, movieID); err != nil {
			return err
		}
	}

	results := make(chan favorites.Result, 1)
	toggler := r.newToggler(results)

	decision, err := toggler.Toggle(ctx, favorites.Input{
		Movie:   movie,
		User:    r.store.ReadState().User,
		History: r.store.Navigator(),
		Ops:     r.store.WriteOperations(),
	})
	if err != nil {
		return err
	}

	if decision == favorites.Redirect {
		return r.writePlain("%s\n", r.store.State().Route())
	}

	toggler.Wait()

	var remoteErr error
	select {
	case res := <-results:
		remoteErr = res.Err
	default:
	}

	switch decision {
	case favorites.Add:
		r.writePlain("★ Added %s to favorites\n", movie.Title)
	case favorites.Remove:
		r.writePlain("☆ Removed %s from favorites\n", movie.Title)
	}

	if remoteErr != nil {
		return r.writePlain("⚠ Saved locally, but the API call failed: %v\n", remoteErr)
	}
	return nil
}

// findMovie looks movieID up in the catalog and records the catalog in the store.
func (r *Runner) findMovie(ctx context.Context, movieID int) (models.Movie, error) {
	movies, err := r.client.Movies(ctx)
	if err != nil {
		return models.Movie{}, err
	}
	r.store.Dispatch(store.SetMovies{Movies: movies})

	for _, m := range movies {
		if m.ID == movieID {
			return m, nil
		}
	}
	return models.Movie{}, fmt.Errorf("%w: %d", shared.ErrMovieNotFound, movieID)
}

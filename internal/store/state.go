package store

import (
	"slices"

	"github.com/desertthunder/moviefav/internal/models"
)

// LoginRoute is the route a toggle without a session redirects to.
const LoginRoute = "/login"

// HomeRoute is the movie list.
const HomeRoute = "/"

// State is the client's global state.
type State struct {
	Movies        []models.Movie
	ShowAllMovies bool
	User          *models.User
	History       History
}

// Displayed returns the movies currently on screen: every movie when ShowAllMovies is set,
// the user's favorites otherwise.
func (s State) Displayed() []models.Movie {
	if s.ShowAllMovies {
		return s.Movies
	}
	return models.FilterFavorites(s.Movies, s.User)
}

// Route returns the most recent history entry, or [HomeRoute] when the history is empty.
func (s State) Route() string {
	if len(s.History) == 0 {
		return HomeRoute
	}
	return s.History[len(s.History)-1]
}

// Apply returns the state that results from applying cmd to s.
//
// Apply never mutates slices reachable from s. Favorite commands without a user are no-ops.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case AddFavorite:
		if s.User == nil || s.User.HasFavorite(c.Movie.ID) {
			return s
		}
		user := s.User.Clone()
		user.Favorites = append(user.Favorites, c.Movie.ID)
		s.User = user
	case RemoveFavorite:
		if s.User == nil || !s.User.HasFavorite(c.Movie.ID) {
			return s
		}
		user := s.User.Clone()
		user.Favorites = slices.DeleteFunc(user.Favorites, func(id int) bool { return id == c.Movie.ID })
		s.User = user
	case SetMovies:
		s.Movies = slices.Clone(c.Movies)
	case SetUser:
		s.User = c.User.Clone()
	case ClearUser:
		s.User = nil
	case SetShowAllMovies:
		s.ShowAllMovies = c.ShowAll
	case Navigate:
		s.History = append(slices.Clip(s.History), c.Route)
	}
	return s
}

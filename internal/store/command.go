package store

import "github.com/desertthunder/moviefav/internal/models"

// CommandKind names a [Command] variant for logs.
type CommandKind string

const (
	KindAddFavorite      CommandKind = "ADD_LOCAL_FAVORITE"
	KindRemoveFavorite   CommandKind = "DELETE_LOCAL_FAVORITE"
	KindSetMovies        CommandKind = "SET_MOVIES"
	KindSetUser          CommandKind = "SET_USER"
	KindClearUser        CommandKind = "CLEAR_USER"
	KindSetShowAllMovies CommandKind = "SET_SHOW_ALL_MOVIES"
	KindNavigate         CommandKind = "NAVIGATE"
)

// Command is a state change request. The set of variants is closed.
type Command interface {
	Kind() CommandKind
	command()
}

var (
	_ Command = AddFavorite{}
	_ Command = RemoveFavorite{}
	_ Command = SetMovies{}
	_ Command = SetUser{}
	_ Command = ClearUser{}
	_ Command = SetShowAllMovies{}
	_ Command = Navigate{}
)

// AddFavorite marks Movie as a favorite of the current user.
type AddFavorite struct{ Movie models.Movie }

// RemoveFavorite unmarks Movie as a favorite of the current user.
type RemoveFavorite struct{ Movie models.Movie }

// SetMovies replaces the movie catalog.
type SetMovies struct{ Movies []models.Movie }

// SetUser starts a session for User.
type SetUser struct{ User *models.User }

// ClearUser ends the session.
type ClearUser struct{}

// SetShowAllMovies switches between all movies and favorites only.
type SetShowAllMovies struct{ ShowAll bool }

// Navigate appends Route to the history.
type Navigate struct{ Route string }

func (AddFavorite) Kind() CommandKind      { return KindAddFavorite }
func (RemoveFavorite) Kind() CommandKind   { return KindRemoveFavorite }
func (SetMovies) Kind() CommandKind        { return KindSetMovies }
func (SetUser) Kind() CommandKind          { return KindSetUser }
func (ClearUser) Kind() CommandKind        { return KindClearUser }
func (SetShowAllMovies) Kind() CommandKind { return KindSetShowAllMovies }
func (Navigate) Kind() CommandKind         { return KindNavigate }

func (AddFavorite) command()      {}
func (RemoveFavorite) command()   {}
func (SetMovies) command()        {}
func (SetUser) command()          {}
func (ClearUser) command()        {}
func (SetShowAllMovies) command() {}
func (Navigate) command()         {}

// NewAddFavorite is the canonical constructor for [AddFavorite].
func NewAddFavorite(movie models.Movie) Command {
	return AddFavorite{Movie: movie}
}

// NewRemoveFavorite is the canonical constructor for [RemoveFavorite].
func NewRemoveFavorite(movie models.Movie) Command {
	return RemoveFavorite{Movie: movie}
}

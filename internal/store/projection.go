package store

import "github.com/desertthunder/moviefav/internal/models"

// ReadState is the read-only view of [State] a movie list needs.
type ReadState struct {
	Movies        []models.Movie
	ShowAllMovies bool
	User          *models.User
}

// WriteOperations are the local favorite mutations a movie list may perform.
type WriteOperations struct {
	AddLocalFavorite    func(models.Movie)
	DeleteLocalFavorite func(models.Movie)
}

// ProjectReadState extracts movies, the show-all flag and the user from s, dropping everything else.
func ProjectReadState(s State) ReadState {
	return ReadState{
		Movies:        s.Movies,
		ShowAllMovies: s.ShowAllMovies,
		User:          s.User,
	}
}

// ProjectWriteOperations binds the local favorite mutations to dispatch.
//
// Each operation builds its command with the canonical constructor and forwards it exactly once.
func ProjectWriteOperations(dispatch func(Command)) WriteOperations {
	return WriteOperations{
		AddLocalFavorite: func(m models.Movie) {
			dispatch(NewAddFavorite(m))
		},
		DeleteLocalFavorite: func(m models.Movie) {
			dispatch(NewRemoveFavorite(m))
		},
	}
}

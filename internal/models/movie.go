package models

import (
	"fmt"
	"slices"
)

// Movie is a movie as served by the favorites API.
type Movie struct {
	ID          int     `json:"movie_id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// Validate checks the fields required to persist a movie.
func (m Movie) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("movie id must be positive, got %d", m.ID)
	}
	if m.Title == "" {
		return fmt.Errorf("movie title is required")
	}
	return nil
}

// Year returns the first four characters of the release date, or "" when unknown.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// User is the logged in user.
//
// A nil *User means no session is active.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Favorites []int  `json:"favorites"`
}

// HasFavorite reports whether movieID is among the user's favorites.
//
// Safe to call on a nil receiver.
func (u *User) HasFavorite(movieID int) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Favorites, movieID)
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Favorites = slices.Clone(u.Favorites)
	return &c
}

// FilterFavorites returns the movies whose IDs are in the user's favorites, in the order of movies.
func FilterFavorites(movies []Movie, user *User) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if user.HasFavorite(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

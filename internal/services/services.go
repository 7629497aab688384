// package services defines the interfaces for talking to the remote favorites API
//
// and implements them over HTTP.
package services

import (
	"context"

	"github.com/desertthunder/moviefav/internal/models"
)

// Remote persists favorite records for the current session's user.
//
// Each call succeeds or fails independently of local state.
type Remote interface {
	// CreateFavorite records movieID as a favorite.
	CreateFavorite(ctx context.Context, movieID int) error

	// DeleteFavorite removes the favorite record for movieID.
	DeleteFavorite(ctx context.Context, movieID int) error
}

// FavoritesService is the full remote favorites API.
type FavoritesService interface {
	Remote

	// Login exchanges credentials for the user and a bearer token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Movies retrieves the movie catalog.
	Movies(ctx context.Context) ([]models.Movie, error)

	// Favorites retrieves the current user's favorite movie IDs.
	Favorites(ctx context.Context) ([]int, error)

	// Health reports whether the API is reachable.
	Health(ctx context.Context) error

	// WithSession returns a copy of the service that acts as userID, authenticating with token.
	WithSession(userID int, token string) FavoritesService
}

// LoginResult is the body returned by a successful login.
type LoginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// LoginRequest is the body sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FavoriteRequest is the body sent to create a favorite.
type FavoriteRequest struct {
	MovieID int `json:"movie_id"`
}

// FavoritesResponse lists a user's favorite movie IDs.
type FavoritesResponse struct {
	Favorites []int `json:"favorites"`
}

// ErrorResponse is the body of a non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// API paths.
const (
	LoginPath     = "/api/v1/login"
	MoviesPath    = "/api/v1/movies"
	HealthPath    = "/health"
	favoritesPath = "/api/v1/users/%d/favorites"
)

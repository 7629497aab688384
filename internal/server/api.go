package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/repositories"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// API serves the favorites endpoints over SQLite.
type API struct {
	users     *repositories.UserRepository
	movies    *repositories.MovieRepository
	favorites *repositories.FavoriteRepository
	tokens    *repositories.TokenRepository
	logger    *log.Logger
}

// NewAPI creates an [API] backed by db. The schema must already be migrated.
func NewAPI(db *sql.DB, logger *log.Logger) *API {
	return &API{
		users:     repositories.NewUserRepository(db),
		movies:    repositories.NewMovieRepository(db),
		favorites: repositories.NewFavoriteRepository(db),
		tokens:    repositories.NewTokenRepository(db),
		logger:    logger,
	}
}

// Register adds every API route to r. Favorites routes require a bearer token.
func (a *API) Register(r Router) {
	r.HandleFunc(http.MethodPost, services.LoginPath, a.login)
	r.HandleFunc(http.MethodGet, services.MoviesPath, a.listMovies)

	favorites := r.Group("/api/v1/users/{id}/favorites", RequireAuth(a.tokens))
	favorites.HandleFunc(http.MethodGet, "", a.listFavorites)
	favorites.HandleFunc(http.MethodPost, "", a.createFavorite)
	favorites.HandleFunc(http.MethodDelete, "/{movie_id}", a.deleteFavorite)
}

// NewHandler builds the complete development API: logging, panic recovery, health check and [API] routes.
func NewHandler(db *sql.DB, logger *log.Logger) http.Handler {
	router := NewBasicRouter()
	router.Use(Recover(logger), Logging(logger))
	router.Handler(HealthHandler{db: db})
	NewAPI(db, logger).Register(router)
	return router
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	account, err := a.users.GetByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, shared.ErrUserNotFound) {
			a.internalError(w, err)
			return
		}
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	favorites, err := a.favorites.MovieIDs(account.ID)
	if err != nil {
		a.internalError(w, err)
		return
	}

	token, err := a.tokens.Issue(account.ID)
	if err != nil {
		a.internalError(w, err)
		return
	}

	a.logger.Info("login", "user_id", account.ID)
	writeJSON(w, http.StatusOK, services.LoginResult{
		User:  models.User{ID: account.ID, Name: account.Name, Email: account.Email, Favorites: favorites},
		Token: token,
	})
}

func (a *API) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := a.movies.List()
	if err != nil {
		a.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (a *API) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.authorizeUser(w, r)
	if !ok {
		return
	}

	ids, err := a.favorites.MovieIDs(userID)
	if err != nil {
		a.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services.FavoritesResponse{Favorites: ids})
}

func (a *API) createFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.authorizeUser(w, r)
	if !ok {
		return
	}

	var req services.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MovieID <= 0 {
		writeError(w, http.StatusBadRequest, "movie_id is required")
		return
	}

	if _, err := a.movies.Get(req.MovieID); err != nil {
		if errors.Is(err, shared.ErrMovieNotFound) {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		a.internalError(w, err)
		return
	}

	favorite := models.NewFavorite(userID, req.MovieID)
	if err := a.favorites.Create(favorite); err != nil {
		a.internalError(w, err)
		return
	}

	a.logger.Debug("favorite created", "user_id", userID, "movie_id", req.MovieID)
	writeJSON(w, http.StatusCreated, map[string]any{"id": favorite.Key(), "movie_id": favorite.MovieID()})
}

func (a *API) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.authorizeUser(w, r)
	if !ok {
		return
	}

	movieID, err := strconv.Atoi(r.PathValue("movie_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	if err := a.favorites.DeleteByUserMovie(userID, movieID); err != nil {
		if errors.Is(err, shared.ErrFavoriteNotFound) {
			writeError(w, http.StatusNotFound, "favorite not found")
			return
		}
		a.internalError(w, err)
		return
	}

	a.logger.Debug("favorite deleted", "user_id", userID, "movie_id", movieID)
	w.WriteHeader(http.StatusNoContent)
}

// authorizeUser checks that the {id} path segment names the token's user.
func (a *API) authorizeUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	pathID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}

	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return 0, false
	}
	if userID != pathID {
		writeError(w, http.StatusForbidden, "forbidden")
		return 0, false
	}
	return userID, true
}

func (a *API) internalError(w http.ResponseWriter, err error) {
	a.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	db *sql.DB
}

func (h HealthHandler) Routes() []string {
	return []string{"GET " + services.HealthPath}
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, services.ErrorResponse{Error: msg})
}

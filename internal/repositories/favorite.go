package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
)

// FavoriteRepository implements [models.Repository] for [models.Favorite] persistence.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new [FavoriteRepository] with the given database connection
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create stores the favorite with a generated key.
//
// Creating an association that already exists is not an error; favorite then carries the stored key and timestamp.
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	if err := favorite.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO favorites (id, user_id, movie_id, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, movie_id) DO NOTHING
	`

	if _, err := r.db.Exec(query, shared.GenerateID(), favorite.UserID(), favorite.MovieID(), favorite.CreatedAt()); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	stored, err := r.GetByUserMovie(favorite.UserID(), favorite.MovieID())
	if err != nil {
		return err
	}
	favorite.SetKey(stored.Key())
	favorite.SetCreatedAt(stored.CreatedAt())

	return nil
}

// Get retrieves a favorite by key
func (r *FavoriteRepository) Get(id string) (*models.Favorite, error) {
	query := `SELECT id, user_id, movie_id, created_at FROM favorites WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id), id)
}

// GetByUserMovie retrieves the association between userID and movieID
func (r *FavoriteRepository) GetByUserMovie(userID, movieID int) (*models.Favorite, error) {
	query := `SELECT id, user_id, movie_id, created_at FROM favorites WHERE user_id = ? AND movie_id = ?`
	return r.scanOne(r.db.QueryRow(query, userID, movieID), fmt.Sprintf("user %d movie %d", userID, movieID))
}

// Delete removes a favorite by key
func (r *FavoriteRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM favorites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return expectOne(result, shared.ErrFavoriteNotFound, id)
}

// DeleteByUserMovie removes the association between userID and movieID
func (r *FavoriteRepository) DeleteByUserMovie(userID, movieID int) error {
	result, err := r.db.Exec("DELETE FROM favorites WHERE user_id = ? AND movie_id = ?", userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return expectOne(result, shared.ErrFavoriteNotFound, fmt.Sprintf("user %d movie %d", userID, movieID))
}

// List retrieves favorites matching the given criteria, oldest first.
//
// Supported criteria: "user_id" (int), "movie_id" (int).
func (r *FavoriteRepository) List(criteria map[string]any) ([]*models.Favorite, error) {
	query := `SELECT id, user_id, movie_id, created_at FROM favorites WHERE 1 = 1`
	args := []any{}

	if userID, ok := criteria["user_id"].(int); ok {
		query += " AND user_id = ?"
		args = append(args, userID)
	}
	if movieID, ok := criteria["movie_id"].(int); ok {
		query += " AND movie_id = ?"
		args = append(args, movieID)
	}

	query += " ORDER BY created_at ASC, movie_id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return favorites, nil
}

// MovieIDs returns the IDs of userID's favorite movies, oldest favorite first.
func (r *FavoriteRepository) MovieIDs(userID int) ([]int, error) {
	favorites, err := r.List(map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.MovieID())
	}
	return ids, nil
}

func (r *FavoriteRepository) scanOne(row *sql.Row, key any) (*models.Favorite, error) {
	favorite, err := scanFavorite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", shared.ErrFavoriteNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}
	return favorite, nil
}

func scanFavorite(s scanner) (*models.Favorite, error) {
	var (
		id        string
		userID    int
		movieID   int
		createdAt time.Time
	)
	if err := s.Scan(&id, &userID, &movieID, &createdAt); err != nil {
		return nil, err
	}
	favorite := models.NewFavorite(userID, movieID)
	favorite.SetKey(id)
	favorite.SetCreatedAt(createdAt)
	return favorite, nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
)

// MovieRepository persists the movie catalog.
type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Upsert inserts movie or replaces the stored row with the same ID.
func (r *MovieRepository) Upsert(movie models.Movie) error {
	if err := movie.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO movies (id, title, overview, release_date, poster_path, vote_average)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			overview = excluded.overview,
			release_date = excluded.release_date,
			poster_path = excluded.poster_path,
			vote_average = excluded.vote_average
	`

	_, err := r.db.Exec(query, movie.ID, movie.Title, movie.Overview, movie.ReleaseDate, movie.PosterPath, movie.VoteAverage)
	if err != nil {
		return fmt.Errorf("failed to upsert movie: %w", err)
	}
	return nil
}

// Get retrieves a movie by ID.
func (r *MovieRepository) Get(id int) (models.Movie, error) {
	query := `
		SELECT id, title, overview, release_date, poster_path, vote_average
		FROM movies
		WHERE id = ?
	`

	movie, err := scanMovie(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Movie{}, fmt.Errorf("%w: %d", shared.ErrMovieNotFound, id)
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("failed to query movie: %w", err)
	}
	return movie, nil
}

// List returns the catalog ordered by ID.
func (r *MovieRepository) List() ([]models.Movie, error) {
	query := `
		SELECT id, title, overview, release_date, poster_path, vote_average
		FROM movies
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return movies, nil
}

func scanMovie(s scanner) (models.Movie, error) {
	var m models.Movie
	err := s.Scan(&m.ID, &m.Title, &m.Overview, &m.ReleaseDate, &m.PosterPath, &m.VoteAverage)
	return m, err
}

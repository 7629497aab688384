package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
)

// SessionRepository caches the client's login in a single row.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save replaces the cached session.
func (r *SessionRepository) Save(session *models.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	favorites := session.User.Favorites
	if favorites == nil {
		favorites = []int{}
	}
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	session.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO sessions (id, user_id, name, email, token, favorites, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			email = excluded.email,
			token = excluded.token,
			favorites = excluded.favorites,
			updated_at = excluded.updated_at
	`

	_, err = r.db.Exec(query, session.User.ID, session.User.Name, session.User.Email, session.Token, string(data), session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the cached session or [shared.ErrNoSession].
func (r *SessionRepository) Load() (*models.Session, error) {
	query := `SELECT user_id, name, email, token, favorites, updated_at FROM sessions WHERE id = 1`

	var (
		session   models.Session
		favorites string
	)
	err := r.db.QueryRow(query).Scan(
		&session.User.ID, &session.User.Name, &session.User.Email, &session.Token, &favorites, &session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if err := json.Unmarshal([]byte(favorites), &session.User.Favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}

	return &session, nil
}

// Clear removes the cached session.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/moviefav/internal/shared"
)

// TokenRepository stores bearer tokens issued by the development API server.
type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Issue creates and stores a new token for userID.
func (r *TokenRepository) Issue(userID int) (string, error) {
	token := shared.GenerateID()
	_, err := r.db.Exec("INSERT INTO tokens (token, user_id, created_at) VALUES (?, ?, ?)", token, userID, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert token: %w", err)
	}
	return token, nil
}

// Lookup returns the user a token belongs to, or [shared.ErrNotAuthenticated].
func (r *TokenRepository) Lookup(token string) (int, error) {
	var userID int
	err := r.db.QueryRow("SELECT user_id FROM tokens WHERE token = ?", token).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, shared.ErrNotAuthenticated
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query token: %w", err)
	}
	return userID, nil
}

// Revoke deletes token. Revoking an unknown token is a no-op.
func (r *TokenRepository) Revoke(token string) error {
	if _, err := r.db.Exec("DELETE FROM tokens WHERE token = ?", token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

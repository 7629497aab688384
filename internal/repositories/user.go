package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
)

// UserRepository implements [models.Repository] for server [models.Account] persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new [UserRepository] with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account and sets its generated ID
func (r *UserRepository) Create(account *models.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO users (email, name, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := r.db.Exec(query, account.Email, account.Name, account.PasswordHash, account.CreatedAt(), now)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	account.ID = int(id)

	return nil
}

// Get retrieves an account by its decimal ID, excluding soft-deleted users
func (r *UserRepository) Get(id string) (*models.Account, error) {
	userID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user id %q", shared.ErrInvalidInput, id)
	}
	return r.GetByID(userID)
}

// GetByID retrieves an account by ID, excluding soft-deleted users
func (r *UserRepository) GetByID(id int) (*models.Account, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE id = ? AND deleted_at IS NULL
	`
	return r.scanOne(r.db.QueryRow(query, id), id)
}

// GetByEmail retrieves an account by email, excluding soft-deleted users
func (r *UserRepository) GetByEmail(email string) (*models.Account, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE email = ? AND deleted_at IS NULL
	`
	return r.scanOne(r.db.QueryRow(query, email), email)
}

// Delete soft-deletes a user by ID
func (r *UserRepository) Delete(id string) error {
	query := `
		UPDATE users
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectOne(result, shared.ErrUserNotFound, id)
}

// List retrieves all accounts matching the given criteria, excluding soft-deleted users.
//
// Supported criteria: "email" (string).
func (r *UserRepository) List(criteria map[string]any) ([]*models.Account, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if email, ok := criteria["email"].(string); ok && email != "" {
		query += " AND email = ?"
		args = append(args, email)
	}

	query += " ORDER BY id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return accounts, nil
}

func (r *UserRepository) scanOne(row *sql.Row, key any) (*models.Account, error) {
	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", shared.ErrUserNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return account, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		account   models.Account
		createdAt time.Time
	)
	if err := s.Scan(&account.ID, &account.Email, &account.Name, &account.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	account.SetCreatedAt(createdAt)
	return &account, nil
}

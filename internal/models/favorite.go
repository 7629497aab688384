package models

import (
	"fmt"
	"time"
)

// Favorite is a persisted user-movie association.
type Favorite struct {
	id        string
	userID    int
	movieID   int
	createdAt time.Time
}

// NewFavorite creates a new, unsaved [Favorite].
func NewFavorite(userID, movieID int) *Favorite {
	return &Favorite{userID: userID, movieID: movieID, createdAt: time.Now().UTC()}
}

func (f *Favorite) Key() string          { return f.id }
func (f *Favorite) UserID() int          { return f.userID }
func (f *Favorite) MovieID() int         { return f.movieID }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }

func (f *Favorite) SetKey(id string)         { f.id = id }
func (f *Favorite) SetCreatedAt(t time.Time) { f.createdAt = t }

// Validate checks that both sides of the association are set.
func (f *Favorite) Validate() error {
	if f.userID <= 0 {
		return fmt.Errorf("favorite user id must be positive, got %d", f.userID)
	}
	if f.movieID <= 0 {
		return fmt.Errorf("favorite movie id must be positive, got %d", f.movieID)
	}
	return nil
}

// Account is a server side user with credentials.
type Account struct {
	ID           int
	Email        string
	Name         string
	PasswordHash string
	createdAt    time.Time
}

// NewAccount creates a new, unsaved [Account].
func NewAccount(email, name, passwordHash string) *Account {
	return &Account{Email: email, Name: name, PasswordHash: passwordHash, createdAt: time.Now().UTC()}
}

func (a *Account) Key() string          { return fmt.Sprint(a.ID) }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) SetCreatedAt(t time.Time) { a.createdAt = t }

// Validate checks the fields required to persist an account.
func (a *Account) Validate() error {
	if a.Email == "" {
		return fmt.Errorf("account email is required")
	}
	if a.Name == "" {
		return fmt.Errorf("account name is required")
	}
	if a.PasswordHash == "" {
		return fmt.Errorf("account password hash is required")
	}
	return nil
}

// Session is the client's cached login.
type Session struct {
	User      User
	Token     string
	UpdatedAt time.Time
}

// Validate checks that the session identifies a user and carries a token.
func (s *Session) Validate() error {
	if s.User.ID <= 0 {
		return fmt.Errorf("session user id must be positive, got %d", s.User.ID)
	}
	if s.Token == "" {
		return fmt.Errorf("session token is required")
	}
	return nil
}

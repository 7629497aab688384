package services

import (
	"context"
	"sync"

	"github.com/desertthunder/moviefav/internal/models"
)

var _ Remote = (*Client)(nil)

// Client holds the [FavoritesService] for the lifetime of the app.
//
// Login, Resume and Logout swap the session bound copy every call delegates to, so a [Remote] handed out once
// keeps working across logins.
type Client struct {
	mu      sync.RWMutex
	base    FavoritesService
	current FavoritesService
	userID  int
}

// NewClient creates a [Client] without a session.
func NewClient(base FavoritesService) *Client {
	return &Client{base: base, current: base}
}

// Login authenticates and binds the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result, err := c.base.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.Resume(result.User.ID, result.Token)
	return result, nil
}

// Resume binds a previously issued token, e.g. from the session cache.
func (c *Client) Resume(userID int, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.base.WithSession(userID, token)
	c.userID = userID
}

// Logout drops the bound token.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.base
	c.userID = 0
}

// UserID returns the bound user, or 0 without a session.
func (c *Client) UserID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

func (c *Client) service() FavoritesService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Client) Movies(ctx context.Context) ([]models.Movie, error) {
	return c.service().Movies(ctx)
}

func (c *Client) Favorites(ctx context.Context) ([]int, error) {
	return c.service().Favorites(ctx)
}

func (c *Client) Health(ctx context.Context) error {
	return c.service().Health(ctx)
}

func (c *Client) CreateFavorite(ctx context.Context, movieID int) error {
	return c.service().CreateFavorite(ctx, movieID)
}

func (c *Client) DeleteFavorite(ctx context.Context, movieID int) error {
	return c.service().DeleteFavorite(ctx, movieID)
}

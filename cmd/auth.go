package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
	"github.com/urfave/cli/v3"
)

// AuthLogin logs in to the favorites API and caches the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	if email == "" || password == "" {
		return fmt.Errorf("%w: --email and --password are required", shared.ErrMissingArgument)
	}

	if err := r.loadSession(); err != nil {
		return err
	}

	r.logger.Info("logging in", "email", email)

	result, err := r.login(ctx, email, password)
	if err != nil {
		return err
	}

	user := result.User
	r.store.Dispatch(store.SetUser{User: &user})

	r.logger.Info("login successful", "user_id", user.ID)
	return r.writePlain("✓ Logged in as %s (%d favorites)\n", user.Name, len(user.Favorites))
}

// login authenticates through the session client and keeps the token for the session cache.
func (r *Runner) login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	result, err := r.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	r.token = result.Token
	return result, nil
}

// AuthLogout forgets the cached session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadSession(); err != nil {
		return err
	}

	if r.store.ReadState().User == nil {
		return r.writePlain("Not logged in\n")
	}

	r.store.Dispatch(store.ClearUser{})
	r.client.Logout()
	r.token = ""

	r.logger.Info("session cleared")
	return r.writePlain("✓ Logged out\n")
}

// AuthStatus checks API health and reports the cached session.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking auth status")

	if err := r.loadSession(); err != nil {
		return err
	}

	if err := r.client.Health(ctx); err != nil {
		return err
	}

	r.writePlain("✓ Service is healthy\n")
	r.writePlain("API: %s\n", r.config.API.BaseURL)

	user := r.store.ReadState().User
	if user == nil {
		return r.writePlain("Session: ✗ Not logged in\n")
	}

	r.writePlain("Session: ✓ %s <%s>\n", user.Name, user.Email)
	return r.writePlain("Favorites: %d\n", len(user.Favorites))
}

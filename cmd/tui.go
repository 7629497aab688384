package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moviefav/internal/favorites"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/ui"
	"github.com/urfave/cli/v3"
)

// tuiBackend gives the TUI the catalog and a login that keeps the session cache in sync.
type tuiBackend struct {
	r *Runner
}

func (b tuiBackend) Movies(ctx context.Context) ([]models.Movie, error) {
	return b.r.client.Movies(ctx)
}

func (b tuiBackend) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return b.r.login(ctx, email, password)
}

// TUI launches the interactive terminal UI for browsing and toggling favorites.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)
	r.store.SetLogger(fileLogger)

	if err := r.loadSession(); err != nil {
		return err
	}

	results := make(chan favorites.Result, 16)
	toggler := r.newToggler(results)

	model := ui.NewModel(ctx, ui.ModelOpts{
		Store:   r.store,
		Backend: tuiBackend{r: r},
		Toggler: toggler,
		Results: results,
		Logger:  fileLogger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	toggler.Wait()
	return nil
}

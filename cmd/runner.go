package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moviefav/internal/favorites"
	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/repositories"
	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	api      services.FavoritesService
	client   *services.Client
	db       *sql.DB
	sessions *repositories.SessionRepository
	store    *store.Store
	token    string
	logger   *log.Logger
	output   io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	API    services.FavoritesService
	DB     *sql.DB // client database; opened from Config on first use when nil
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.API == nil {
		opts.API = services.NewAPIService(opts.Config.API.BaseURL, nil)
	}

	r := &Runner{
		config: opts.Config,
		api:    opts.API,
		client: services.NewClient(opts.API),
		db:     opts.DB,
		logger: opts.Logger,
		output: opts.Output,
	}
	r.store = store.New(store.State{}, r.logger)
	r.store.Subscribe(r.persistSession)
	return r
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, favoritesCommand, serveCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by the runner and everything it builds afterwards.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// database returns the client database, opening it and applying migrations on first use.
func (r *Runner) database() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.OpenDatabase(r.config.Database)
	if err != nil {
		return nil, err
	}
	r.db = db
	return db, nil
}

// loadSession restores the cached login into the store and binds its token to the client.
//
// A missing session is not an error.
func (r *Runner) loadSession() error {
	db, err := r.database()
	if err != nil {
		return err
	}
	r.sessions = repositories.NewSessionRepository(db)

	session, err := r.sessions.Load()
	if errors.Is(err, shared.ErrNoSession) {
		r.logger.Debug("no cached session")
		return nil
	}
	if err != nil {
		return err
	}

	r.token = session.Token
	r.client.Resume(session.User.ID, session.Token)

	user := session.User
	r.store.Dispatch(store.SetUser{User: &user})
	r.logger.Debug("session restored", "user_id", user.ID)
	return nil
}

// persistSession writes the store's user back to the session cache.
func (r *Runner) persistSession(cmd store.Command, s store.State) {
	if r.sessions == nil {
		return
	}

	switch cmd.(type) {
	case store.ClearUser:
		if err := r.sessions.Clear(); err != nil {
			r.logger.Error("failed to clear session", "error", err)
		}
	case store.SetUser, store.AddFavorite, store.RemoveFavorite:
		if s.User == nil || r.token == "" {
			return
		}
		if err := r.sessions.Save(&models.Session{User: *s.User, Token: r.token}); err != nil {
			r.logger.Error("failed to save session", "error", err)
		}
	}
}

// newToggler builds a [favorites.Toggler] from the [favorites] config, calling the API through the session client.
func (r *Runner) newToggler(results chan<- favorites.Result) *favorites.Toggler {
	cfg := r.config.Favorites
	return favorites.NewToggler(favorites.TogglerOpts{
		Remote:    r.client,
		Logger:    shared.WithLogger(r.logger, "component", "toggler"),
		Serialize: cfg.SerializeToggles,
		RateLimit: cfg.RateLimit,
		Burst:     cfg.Burst,
		Results:   results,
	})
}

// Close releases the client database.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// requireSession returns [shared.ErrNotAuthenticated] when no user is logged in.
func (r *Runner) requireSession() error {
	if r.store.ReadState().User == nil {
		return fmt.Errorf("%w: run 'moviefav auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}

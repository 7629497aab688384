// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the client database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Create config.toml if missing, initialize the database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "Forget the cached login",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the favorites API session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in and cache the session locally",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Sources:  cli.EnvVars("MOVIEFAV_PASSWORD"),
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Forget the cached session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Check API health and the cached session",
				Action: r.AuthStatus,
			},
		},
	}
}

// moviesCommand handles catalog operations
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "movies",
		Usage: "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorite movies, or every movie with --all",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "all",
						Aliases: []string{"a"},
						Usage:   "Show every movie instead of only favorites",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, markdown, csv or json",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write to a file instead of stdout",
					},
				},
				Action: r.MoviesList,
			},
		},
	}
}

// favoritesCommand handles favorite operations
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favorite movies",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorites as stored by the API",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "toggle",
				Usage: "Add or remove a movie from favorites",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "movie-id",
					},
				},
				Action: r.FavoritesToggle,
			},
		},
	}
}

// serveCommand runs the development favorites API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the development favorites API over SQLite",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Insert the demo catalog and account (demo@example.com / password)",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address (default: [server] host and port)",
			},
			&cli.StringFlag{
				Name:  "database",
				Usage: "Server database path (default: [server] database)",
			},
		},
		Action: r.Serve,
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the favorites API",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET with the cached session, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive favorite management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing and toggling favorites",
		Action:  r.TUI,
	}
}

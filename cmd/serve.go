package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/moviefav/internal/server"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the development favorites API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("database")
	if path == "" {
		path = r.config.Server.Database
	}
	addr := cmd.String("addr")
	if addr == "" {
		addr = r.config.Server.Addr()
	}

	logger := shared.WithLogger(r.logger, "component", "server")

	db, err := shared.OpenDatabase(shared.DatabaseConfig{Path: path})
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Bool("seed") {
		if err := server.Seed(db); err != nil {
			return err
		}
		logger.Info("database seeded", "email", server.DemoEmail, "movies", len(server.DemoMovies))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(addr, server.NewHandler(db, logger))
	r.writePlain("Serving favorites API on http://%s (database: %s)\n", addr, path)

	return server.Run(ctx, srv, logger)
}

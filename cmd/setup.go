package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/desertthunder/moviefav/internal/repositories"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase writes config.toml when it is missing, then opens the client database and applies migrations.
//
// With --reset the cached session is forgotten as well.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := shared.CreateConfigFile(path); err != nil {
			return err
		}
		r.writePlain("✓ Wrote default config to %s\n", path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	if err := shared.LoadEnv(config); err != nil {
		return err
	}
	r.config = config

	r.logger.Info("initializing database", "path", config.Database.Path)

	if r.db != nil {
		r.db.Close()
		r.db = nil
	}
	db, err := r.database()
	if err != nil {
		return err
	}

	version, err := shared.SchemaVersion(db)
	if err != nil {
		return err
	}
	r.logger.Debug("migrations applied", "version", version)

	if cmd.Bool("reset") {
		if err := repositories.NewSessionRepository(db).Clear(); err != nil {
			return err
		}
		r.writePlain("✓ Cleared cached session\n")
	}

	return r.writePlain("✓ Database ready at %s (schema version %d)\n", config.Database.Path, version)
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/moviefav/internal/services"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/urfave/cli/v3"
)

// rawGetter is implemented by services that expose raw GET requests.
type rawGetter interface {
	Get(ctx context.Context, path string) (*services.APIResponse, error)
}

// APIGet makes a direct GET request to the favorites API, authenticated with the cached session if there is one.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if err := r.loadSession(); err != nil {
		return err
	}

	api := r.api
	if user := r.store.ReadState().User; user != nil && r.token != "" {
		api = r.api.WithSession(user.ID, r.token)
	}

	getter, ok := api.(rawGetter)
	if !ok {
		return fmt.Errorf("%w: raw requests are not supported by this API client", shared.ErrNotImplemented)
	}

	r.logger.Info("GET request", "path", path)

	resp, err := getter.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
	}

	return r.writePlain("%s\n", resp.Body)
}

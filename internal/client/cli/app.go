// Package cli implements the interactive PoleForge client: a small REPL
// that drives the session layer and the project API.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/poleforge/poleforge/internal/client/api"
	"github.com/poleforge/poleforge/internal/client/config"
	"github.com/poleforge/poleforge/internal/client/session"
	"github.com/poleforge/poleforge/internal/client/store"
	"github.com/poleforge/poleforge/internal/logging"
)

// App wires config, the local database, the API client, and the session
// manager together and exposes the REPL commands.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	mgr := session.NewManager(apiClient, store.NewSessionStore(db), log)

	return &App{
		config:  c,
		api:     apiClient,
		session: mgr,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and starts the REPL. Rehydration
// completes before the first prompt, so every command sees a resolved
// authentication state.
func (a *App) Run(ctx context.Context) {
	a.session.Rehydrate(ctx)
	a.Root(ctx)
}

func (a *App) isAuthenticated() bool {
	return a.session.State() == session.StateAuthenticated
}

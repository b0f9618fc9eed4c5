package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/cubihealth/internal/common"
	"github.com/dmitrijs2005/cubihealth/internal/config"
	"github.com/dmitrijs2005/cubihealth/internal/dashboard"
	"github.com/dmitrijs2005/cubihealth/internal/logging"
	"github.com/dmitrijs2005/cubihealth/internal/repositories/scores"
	"github.com/dmitrijs2005/cubihealth/internal/session"
	"github.com/dmitrijs2005/cubihealth/internal/storage"
)

type App struct {
	sessions  *session.Store
	scores    scores.Repository
	dashboard *dashboard.Reader
	logger    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	closeFn func() error
}

// NewApp opens the configured score store and builds the session store
// around the simulated identity provider.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repo, closeFn, err := storage.OpenScores(ctx, storage.Options{
		Backend:     c.ScoreStore,
		SQLitePath:  c.DatabasePath,
		PostgresDSN: c.PostgresDSN,
	})
	if err != nil {
		logger.Error(ctx, "error initializing score store", "error", err)
		return nil, err
	}

	provider := session.NewSimulated(session.WithLatency(c.ProviderLatency))
	opts := []session.Option{
		session.WithTokenValidity(c.TokenValidity),
		session.WithIdentityTimeout(c.IdentityTimeout),
	}
	if c.SecretKey != "" {
		opts = append(opts, session.WithTokenSecret([]byte(c.SecretKey)))
	}
	sessions, err := session.NewStore(provider, logger, opts...)
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	return newApp(sessions, repo, logger, bufio.NewReader(os.Stdin), os.Stdout, closeFn), nil
}

func newApp(sessions *session.Store, repo scores.Repository, logger logging.Logger, reader *bufio.Reader, out io.Writer, closeFn func() error) *App {
	return &App{
		sessions:  sessions,
		scores:    repo,
		dashboard: dashboard.NewReader(repo, sessions.SecretKey()),
		logger:    logger,
		reader:    reader,
		out:       out,
		closeFn:   closeFn,
	}
}

// Run blocks in the REPL until the user exits, then releases the store.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintf(a.out, "Welcome to %s (type 'help' for commands)\n", common.AppName)
	runREPL(ctx, a, a.status, a.reader)
	return a.Close()
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) status() string {
	id, ok := a.sessions.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", id.DisplayName, id.Role)
}

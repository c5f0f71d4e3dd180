// Package cli implements the interactive admin console: a read–eval–print
// loop over the session guard and the application services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/nmorozs/quizadmin/internal/client/api"
	"github.com/nmorozs/quizadmin/internal/client/config"
	"github.com/nmorozs/quizadmin/internal/client/services"
	"github.com/nmorozs/quizadmin/internal/client/session"
	"github.com/nmorozs/quizadmin/internal/logging"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	session     *session.Session
	progression *services.ProgressionService
	gameModes   *services.GameModeService
	users       *services.UserService
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewDefault(c.LogLevel)

	holder := session.NewTokenHolder()
	apiClient := api.NewRESTClient(c.BaseURL, c.HTTPTimeout, holder, logger)
	store := session.NewFileStore(c.TokenFile)
	sess := session.New(apiClient, store, holder, logger)

	return &App{
		config:      c,
		logger:      logger,
		session:     sess,
		progression: services.NewProgressionService(apiClient),
		gameModes:   services.NewGameModeService(apiClient),
		users:       services.NewUserService(apiClient),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves any stored token and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)

	if user := a.session.CurrentUser(); user != nil {
		fmt.Printf("Logged in as %s\n", user.Email)
	} else {
		fmt.Println("Welcome to the quizadmin console (type 'help' for commands)")
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// getStatus renders the prompt suffix: the operator's email when logged in.
func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

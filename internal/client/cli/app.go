package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	reader      *bufio.Reader
	out         io.Writer
	userName    string
}

// NewApp opens the session database and prepares the server connection.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := client.OpenDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, db)

	app := &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
	if id, err := as.Current(ctx); err == nil {
		app.userName = id.Email
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Run executes the command named in args, or starts the interactive prompt
// when args has none.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.authService.Close(ctx)

	if cmd := commandName(args); cmd != "" {
		return dispatch(ctx, a, cmd)
	}

	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
	return nil
}

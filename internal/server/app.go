// Package server wires configuration, storage, the auth service and the
// gRPC endpoint together and runs them until shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

var (
	logOutput    io.Writer = os.Stdout
	openPostgres           = func(ctx context.Context, dsn string) (repomanager.Manager, error) {
		return repomanager.OpenPostgres(ctx, dsn)
	}
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       repomanager.Manager
	authService *services.AuthService
}

// NewApp opens the store and builds the service graph. The returned App owns
// the store and closes it when Run returns.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	tokens, err := auth.NewTokenManager([]byte(c.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("token manager init error: %w", err)
	}

	var store repomanager.Manager
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, using in-memory store")
		store = repomanager.NewMemory()
	} else {
		store, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	as := services.NewAuthService(store, auth.NewBcryptHasher(auth.DefaultBcryptCost), tokens, logger)

	return &App{config: c, logger: logger, store: store, authService: as}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves gRPC until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.config.ShutdownTimeout, app.logger, app.authService)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "grpc server failed", "error", runErr)
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "store close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")

	return runErr
}

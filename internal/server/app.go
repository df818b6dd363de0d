// Package server assembles the gateway: it validates configuration, builds the
// backend client once, mounts the HTTP routes and runs them until a shutdown
// signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/usergate/internal/logging"
	"github.com/dmitrijs2005/usergate/internal/server/backend"
	"github.com/dmitrijs2005/usergate/internal/server/config"
	"github.com/dmitrijs2005/usergate/internal/server/gateway"
	"github.com/dmitrijs2005/usergate/internal/server/httpserver"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client backend.Client
	server *httpserver.Server
}

// NewApp fails fast when the configuration cannot serve requests, e.g. the
// hosted backend endpoint or access key is missing.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSONLogger(os.Stdout, slog.LevelInfo))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	client, err := backend.New(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("backend init error: %w", err)
	}

	router := gateway.NewRouter(gateway.NewHandler(client, logger), logger)
	srv := httpserver.New(c.HTTPAddr, router, logger, c.ShutdownTimeout)

	return &App{config: c, logger: logger, client: client, server: srv}, nil
}

// waitForSignal cancels the app on SIGINT, SIGTERM or SIGQUIT and returns
// early when ctx ends for another reason.
func (app *App) waitForSignal(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	select {
	case sig := <-sigs:
		app.logger.Info(ctx, "Signal received", "signal", sig.String())
		cancelFunc()
	case <-ctx.Done():
	}
}

// Run serves until ctx is cancelled, a signal arrives or the server fails.
// The backend client is closed before Run returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.Backend, "address", app.config.HTTPAddr)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.waitForSignal(gctx, cancelFunc)
		return nil
	})

	g.Go(func() error {
		return app.server.Run(gctx)
	})

	err := g.Wait()

	if cerr := app.client.Close(); cerr != nil {
		app.logger.Error(ctx, "backend close error", "error", cerr.Error())
	}

	if err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

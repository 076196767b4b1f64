// Package server initializes and runs the portal server application.
// It selects the storage backend, wires the services and the TCP endpoint,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/logging"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/export"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/repomanager"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/services"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/tcp"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	server  *tcp.Server
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	manager, err := newRepositoryManager(c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	auth := services.NewAuthService(manager.Departments())
	submissions := services.NewSubmissionService(manager.Entries(), c)
	engine := export.NewEngine(manager.Entries(), c, logger)

	stats := &tcp.Stats{}
	handler := tcp.NewHandler(auth, submissions, engine, stats, logger)
	server := tcp.NewServer(c, logger, handler, stats)

	return &App{config: c, logger: logger, manager: manager, server: server}, nil
}

// newRepositoryManager picks the storage backend: Postgres when a DSN is
// configured, the in-memory store otherwise.
func newRepositoryManager(c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		return repomanager.NewInMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}

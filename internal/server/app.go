// Package server wires configuration, storage, services and transports
// together and runs the HTTP API and the gRPC health service until a
// termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/orgchart/internal/dbx"
	"github.com/dmitrijs2005/orgchart/internal/logging"
	"github.com/dmitrijs2005/orgchart/internal/server/auth"
	"github.com/dmitrijs2005/orgchart/internal/server/config"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/orgchart/internal/server/rest"
	"github.com/dmitrijs2005/orgchart/internal/server/services"

	gs "github.com/dmitrijs2005/orgchart/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	rest   *rest.RESTServer
	grpc   *gs.GRPCServer
}

// openDB is a seam for tests.
var openDB = dbx.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	codec := auth.NewCodec(c.JWT.Secret, c.JWT.SessionTime, c.JWT.Issuer)

	svc := rest.Services{
		Users:       services.NewUserService(db, rm, codec),
		Persons:     services.NewPersonService(db, rm),
		Departments: services.NewDepartmentService(db, rm),
		Jobs:        services.NewJobService(db, rm),
		Photos:      services.NewPhotoService(db, rm, c),
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		rest:   rest.NewRESTServer(c.EndpointAddrHTTP, logger, svc, codec),
		grpc:   gs.NewGRPCServer(c.EndpointAddrGRPC, logger, db, c.HealthCheckInterval),
	}, nil
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

type runner interface {
	Run(ctx context.Context) error
}

// start runs r and cancels the whole app when it fails.
func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "http", app.rest)
	}()
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "grpc", app.grpc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}
	app.logger.Info(ctx, "App stopped")

	if s, ok := app.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

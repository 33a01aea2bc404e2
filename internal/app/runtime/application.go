// Package runtime wires configuration, storage and the HTTP server into a
// runnable application.
package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/fernlabs/todo-api/internal/app/httpapi"
	"github.com/fernlabs/todo-api/internal/app/services/todos"
	"github.com/fernlabs/todo-api/internal/app/storage/postgres"
	"github.com/fernlabs/todo-api/internal/config"
	"github.com/fernlabs/todo-api/internal/platform/migrations"
)

// Application owns the database handle and the HTTP server lifecycle.
type Application struct {
	cfg    *config.Config
	log    *logrus.Logger
	db     *sqlx.DB
	server *http.Server
}

// NewApplication opens the database, runs pending migrations and wires the
// store, service and HTTP handler.
func NewApplication(cfg *config.Config, log *logrus.Logger) (*Application, error) {
	if log == nil {
		log = logrus.New()
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info("database connected")

	if err := migrations.Apply(db.DB, cfg.MigrationsDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations applied")

	store := postgres.New(db)
	svc := todos.New(store, log)
	handler := httpapi.NewHandler(svc, log)

	return &Application{
		cfg:    cfg,
		log:    log,
		db:     db,
		server: &http.Server{Handler: handler},
	}, nil
}

// Run binds the TCP listener and serves until the context is cancelled or
// the server fails.
func (a *Application) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", a.cfg.ListenAddr, err)
	}
	a.log.Infof("server listening on http://%s", a.cfg.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown stops the HTTP server and closes the database handle.
func (a *Application) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.WithError(err).Warn("error closing database connection")
		}
	}
	return nil
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/yanews/config"
	"github.com/daniilsolovey/yanews/internal/db"
	"github.com/daniilsolovey/yanews/internal/newsportal"
	"github.com/daniilsolovey/yanews/internal/rest"
	"github.com/daniilsolovey/yanews/internal/rpc"
)

// ErrNoDatabase is returned when postgres storage is configured without a connection.
var ErrNoDatabase = errors.New("postgres storage configured without a database connection")

// Store is the storage backend the app serves from.
type Store interface {
	newsportal.Store
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	DB     Store
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

// New wires storage, the news manager, REST pages and RPC. dbConnect is ignored
// when the memory storage is configured.
func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	var store Store
	switch {
	case cfg.UseMemory():
		store = db.NewMemoryRepository()
	case dbConnect == nil:
		return nil, ErrNoDatabase
	default:
		if cfg.App.LogQueries {
			dbConnect.AddQueryHook(db.NewQueryHook(logger))
		}
		store = db.New(dbConnect)
	}

	manager := newsportal.NewNewsManager(store, newsportal.Config{
		HomePageCount: cfg.News.HomePageCount,
		SessionTTL:    cfg.Auth.SessionTTL,
	})

	e := rest.NewNewsHandler(manager, logger, cfg.Auth.SecureCookie).RegisterRoutes()
	e.Any(rest.RPCPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     store,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.DB.Ping(ctx); err != nil {
		return fmt.Errorf("ping storage: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr, "storage", a.Config.App.Storage)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.DB.Close())
}

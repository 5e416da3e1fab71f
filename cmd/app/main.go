package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/yanews/config"
	_ "github.com/daniilsolovey/yanews/docs"
	"github.com/daniilsolovey/yanews/internal/app"
	"github.com/daniilsolovey/yanews/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations on start")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Yanews API
// @version 1.0
// @description News site with comments and accounts
// @host localhost:8000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	exitOnError(cfg.ApplyDatabaseURL(*flDatabaseURL))

	ctx := context.Background()

	var dbConnect *pg.DB
	if !cfg.UseMemory() {
		dbConnect = pg.Connect(&cfg.Database)
		if err := dbConnect.Ping(ctx); err != nil {
			dbConnect.Close()
			exitOnError(err)
		}

		if *flMigrate {
			exitOnError(db.Migrate(ctx, cfg.DatabaseURL()))
			lg.Info("migrations applied")
		}
	}

	service, err := app.New(&cfg, dbConnect, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}

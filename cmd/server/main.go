package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/purduehcr/points-api/internal/api"
	"github.com/purduehcr/points-api/internal/config"
	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/jobs"
	"github.com/purduehcr/points-api/internal/logging"
	"github.com/purduehcr/points-api/internal/observability"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logg.Closer()

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		logg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flushSentry()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logg.Sugar.Fatalw("db open", "err", err)
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(database); err != nil {
		logg.Sugar.Fatalw("db migrate", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.SeedDefaults(ctx, database); err != nil {
		logg.Sugar.Fatalw("db seed", "err", err)
	}

	jobs.Start(ctx, database)
	api.StartOps(ctx, cfg.OpsAddr, database)

	router := api.NewRouter(cfg, database, logg)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logg.Base.Info("http server started", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Sugar.Fatalw("http serve", "err", err)
		}
	}()

	<-ctx.Done()
	logg.Base.Info("shutting down")

	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logg.Sugar.Errorw("http shutdown", "err", err)
	}
}

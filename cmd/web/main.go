package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/db"
	"github.com/baharkarakas/blog-backend/internal/logger"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/repository/postgres"
	"github.com/baharkarakas/blog-backend/internal/services"
	"github.com/baharkarakas/blog-backend/internal/web"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// `blog-backend init-db` wipes and recreates the schema, then exits.
	if len(os.Args) > 1 && os.Args[1] == "init-db" {
		if err := db.InitSchema(ctx, pool); err != nil {
			log.Error("init-db", "err", err)
			os.Exit(1)
		}
		log.Info("initialized the database")
		return
	}

	repos := postgres.NewRepositories(pool)
	userSvc := services.NewUserService(repos.Users)
	postSvc := services.NewPostService(repos.Posts)
	sessions := auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL)

	metrics.Init()
	r := web.NewRouter(web.RouterDeps{
		Cfg:      cfg,
		Users:    userSvc,
		Posts:    postSvc,
		Sessions: sessions,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

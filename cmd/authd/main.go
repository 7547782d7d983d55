// cmd/authd/main.go
//
// authd – HTTP auth service entry point.
//
// Boot sequence
// -------------
//
//  1. Load configuration (defaults → optional YAML file → env overrides)
//     and fail fast on missing secrets or invalid values.
//
//  2. Initialise structured logging per the logging section and start the
//     retention cleanup loop when file logging is enabled.
//
//  3. Open the database pool and verify connectivity with a bounded ping.
//
//  4. Build the router: CORS and rate-limit middleware, Prometheus
//     /metrics, and the versioned user API under /api/v1/users.
//
//  5. Serve until SIGINT/SIGTERM, then drain in-flight requests with a
//     bounded graceful shutdown.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/authd/internal/auth"
	"github.com/yanizio/authd/internal/config"
	"github.com/yanizio/authd/internal/database"
	"github.com/yanizio/authd/internal/logging"
	"github.com/yanizio/authd/internal/middleware"
	"github.com/yanizio/authd/internal/server"
	"github.com/yanizio/authd/internal/user"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	//
	// ── 1.  Logging ─────────────────────────────────────────────────────
	//
	logger, err := logging.Init(&cfg.Logging)
	if err != nil {
		log.Fatalf("start logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Logging.File {
		logging.StartCleanupLoop(&cfg.Logging)
	}

	//
	// ── 2.  Database ────────────────────────────────────────────────────
	//
	logger.Infow("connecting to database")
	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatalw("connect database", "error", err)
	}
	defer db.Close()
	logger.Infow("database online", "max_connections", cfg.Database.MaxConnections)

	if cfg.Cache.URL != "" {
		logger.Infow("cache configured", "url_scheme", "redis")
	}

	//
	// ── 3.  Router ──────────────────────────────────────────────────────
	//
	tokens := auth.NewTokenService(cfg.Secrets.JWTSecret, auth.DefaultTTL)
	svc := user.NewService(db, tokens)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(&cfg.Cors))
	r.Use(middleware.RateLimit(50, 100))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Mount("/api/v1/users", user.Routes(svc, tokens))

	//
	// ── 4.  Serve with graceful shutdown ────────────────────────────────
	//
	srv := server.New(&cfg.Server, r)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infow("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalw("server error", "error", err)
	}
	logger.Infow("shutdown complete")
}

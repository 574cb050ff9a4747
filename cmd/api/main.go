// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the VidTube HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Load the signing keys and build the media adapters.
//  6. Wire repositories, services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/vidtube/internal/api"
	"github.com/taibuivan/vidtube/internal/core/dashboard"
	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/config"
	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/media"
	"github.com/taibuivan/vidtube/internal/platform/migration"
	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/social/comment"
	"github.com/taibuivan/vidtube/internal/social/like"
	"github.com/taibuivan/vidtube/internal/social/playlist"
	"github.com/taibuivan/vidtube/internal/social/subscription"
	"github.com/taibuivan/vidtube/internal/social/tweet"
	"github.com/taibuivan/vidtube/internal/users/account"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[VidTube] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A 30s deadline surfaces misconfiguration
	// quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Security & Media ───────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	storage, err := media.NewS3Storage(startupCtx, media.StorageConfig{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	must(log, err, "initialize media storage")

	prober := media.NewFFProbe(cfg.FFProbePath, cfg.ProbeTimeout)

	must(log, os.MkdirAll(cfg.UploadDir, 0o750), "create upload directory")

	// ── 6. Health handlers ────────────────────────────────────────────────
	health := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: pgstore.Pinger{Pool: pool}.Ping,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	uploads := requestutil.UploadLimits{Dir: cfg.UploadDir, MaxBytes: cfg.MaxUploadBytes}
	lifetimes := auth.TokenLifetimes{Access: cfg.AccessTokenTTL, Refresh: cfg.RefreshTokenTTL}

	authService := auth.NewService(auth.NewRepository(pool), tokens, storage, lifetimes, log)
	accountService := account.NewService(account.NewRepository(pool), storage, log)
	videoService := video.NewService(video.NewRepository(pool), storage, prober, log)

	handlers := api.Handlers{
		Liveness:     health.Liveness,
		Readiness:    health.Readiness,
		Healthcheck:  health.Healthcheck,
		Auth:         auth.NewHandler(authService, uploads, lifetimes),
		Account:      account.NewHandler(accountService, uploads),
		Video:        video.NewHandler(videoService, uploads),
		Comment:      comment.NewHandler(comment.NewService(comment.NewRepository(pool))),
		Tweet:        tweet.NewHandler(tweet.NewService(tweet.NewRepository(pool))),
		Playlist:     playlist.NewHandler(playlist.NewService(playlist.NewRepository(pool))),
		Like:         like.NewHandler(like.NewService(like.NewRepository(pool))),
		Subscription: subscription.NewHandler(subscription.NewService(subscription.NewRepository(pool))),
		Dashboard:    dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(pool))),
	}

	// The auth service verifies presented access tokens for the middleware.
	server := api.NewServer(cfg, log, authService, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "vidtube"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

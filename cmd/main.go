package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "biz-awards/internal/adapter/http"
	"biz-awards/internal/adapter/postgres"
	redisstore "biz-awards/internal/adapter/redis"
	"biz-awards/internal/adapter/usecase"
	"biz-awards/internal/config"
	"biz-awards/internal/db"
)

// main is the entry point of the biz-awards service. It loads
// configuration, optionally runs database migrations, initializes the
// Postgres pool, Redis client and adapters, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down.
func main() {
	// A local .env overrides nothing already set in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	redisClient, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	adRepo := postgres.NewAdRepository(pool)
	nomRepo := postgres.NewNominationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	notifier := postgres.NewNotifier(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	sessions := redisstore.NewSessionStore(redisClient)

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Ads:         usecase.NewAdUseCase(adRepo),
		Nominations: usecase.NewNominationUseCase(nomRepo, userRepo, notifier, logger),
		Analytics:   usecase.NewAnalyticsUseCase(analyticsRepo, adRepo),
		Sessions:    sessions,
		Tokens:      userRepo,
	}, httpadapter.Config{
		SessionTTL:     cfg.Redis.SessionTTL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

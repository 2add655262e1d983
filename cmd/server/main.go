package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/halorec/league-stats/internal/config"
	"github.com/halorec/league-stats/internal/handlers"
	"github.com/halorec/league-stats/internal/logic"
	"github.com/halorec/league-stats/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialect, err := logic.DialectFor(cfg.Dialect, cfg.Schema)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg.Dialect, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()
	sugar.Infow("Connected to store", "dialect", store.Dialect())

	checks := map[string]handlers.Pinger{store.Dialect(): store}

	var roster logic.Roster = logic.StaticRoster(cfg.SelectedPlayers)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parsing redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		roster = logic.NewRedisRoster(rdb, cfg.RosterRedisKey, roster, logger)
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	h := handlers.New(handlers.Config{
		Stats:     logic.NewLeagueStatsService(store, dialect, logger),
		Roster:    roster,
		Checks:    checks,
		Logger:    logger,
		Title:     cfg.Title,
		PageSize:  cfg.PageSize,
		ExposeSQL: cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("HTTP server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/config"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/migrations"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/repository"
	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/logging"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/metrics"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/question"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/question/ai"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/server"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/stats"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps logger, Postgres, the optional Redis cache and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.Postgres.MaxConns)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.Postgres.AutoMigrate {
		if err := migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info().Msg("database migrations applied")
	}

	var (
		redisClient *redis.Client
		statsCache  stats.StatsCache
	)
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		statsCache = stats.NewCache(redisClient, cfg.Stats.CacheTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("stats cache enabled")
	} else {
		logger.Info().Msg("REDIS_ADDR not set; stats cache disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	queries := sqlcgen.New(pool)
	txRunner := repository.NewTxRunner(pool)
	setRepo := repository.NewSetRepository(queries, txRunner)
	questionRepo := repository.NewQuestionRepository(queries, txRunner)
	statsRepo := repository.NewStatsRepository(queries)

	statsSvc := stats.NewService(statsRepo, statsCache, logger)

	if cfg.AI.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set; generation serves the fallback list")
	}
	generator := ai.NewGenerator(ai.Config{
		APIKey:  cfg.AI.GeminiAPIKey,
		Model:   cfg.AI.Model,
		BaseURL: cfg.AI.BaseURL,
		Timeout: cfg.AI.HTTPTimeout,
	}, m, logger)

	questionSvc := question.NewService(setRepo, questionRepo, question.ServiceOptions{
		Generator: generator,
		Notifier:  statsSvc,
		Logger:    logger,
	})

	apiServer := server.NewHTTPServer(cfg, logger, server.Handlers{
		Questions: question.NewHTTPHandler(questionSvc, logger),
		Stats:     stats.NewHTTPHandler(statsSvc, logger),
		Store:     repository.NewHealthRepository(queries),
		Metrics:   m,
		Gatherer:  registry,
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

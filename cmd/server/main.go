package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	httpadapter "ats/internal/adapters/http"
	"ats/internal/adapters/memory"
	"ats/internal/adapters/notify"
	pg "ats/internal/adapters/postgres"
	"ats/internal/config"
	"ats/internal/domain"
	"ats/internal/logging"
	"ats/internal/ports"
	"ats/internal/ratelimit"
	appsvc "ats/internal/services/applications"
	"ats/internal/services/history"
	"ats/internal/services/pipeline"
	"ats/internal/services/timeline"
	"ats/internal/workers/dispatcher"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNoDatabase) {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, table := domain.DefaultCatalog(), domain.DefaultTransitionTable()
	if cfg.PipelineTemplate != "" {
		catalog, table, err = config.LoadPipelineTemplate(cfg.PipelineTemplate)
		if err != nil {
			return err
		}
		logger.Info("pipeline template loaded", slog.String("path", cfg.PipelineTemplate))
	}

	var (
		repo       ports.ApplicationRepository
		candidates ports.CandidateDirectory
		queue      ports.EventQueue
	)
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		store := memory.NewStore()
		repo, candidates, queue = store, store, store
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if cfg.MigrateOnStart {
			if err := db.Migrate(ctx); err != nil {
				return err
			}
		}
		repo, candidates, queue = db, db, db
	}

	limiter, closeLimiter := newLimiter(ctx, cfg, logger)
	defer closeLimiter()

	notifier := notify.LogNotifier{Logger: logger}
	var opts []appsvc.Option
	if cfg.EventWorkers == 0 {
		// No background workers: deliver each change's events before replying.
		opts = append(opts, appsvc.WithAfterCommit(func(ctx context.Context) {
			if _, err := dispatcher.DispatchPending(ctx, queue, notifier, logger); err != nil {
				logger.Error("inline event dispatch", slog.String("error", err.Error()))
			}
		}))
	}

	machine := pipeline.New(catalog, table, history.New())
	apps := appsvc.New(repo, candidates, machine, timeline.New(catalog), logger, opts...)
	srv := httpadapter.New(apps, machine, limiter, logger)

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", slog.String("addr", cfg.ListenAddr), slog.String("env", cfg.Env))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if cfg.EventWorkers > 0 {
		g.Go(func() error {
			logger.Info("event workers started", slog.Int("workers", cfg.EventWorkers))
			return dispatcher.Run(gctx, queue, notifier, cfg.EventWorkers, cfg.EventPollInterval, logger)
		})
	}
	return g.Wait()
}

// newLimiter prefers Redis so limits hold across instances and falls back to
// an in-process limiter when Redis is absent or unreachable.
func newLimiter(ctx context.Context, cfg config.Config, logger *slog.Logger) (ratelimit.Limiter, func()) {
	memoryLimiter := ratelimit.NewMemoryLimiter(cfg.MutationRateLimit, cfg.MutationRateWindow)
	if cfg.RedisURL == "" {
		return memoryLimiter, func() {}
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("redis url parse failed", slog.String("error", err.Error()))
		return memoryLimiter, func() {}
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("redis ping failed", slog.String("error", err.Error()))
		_ = client.Close()
		return memoryLimiter, func() {}
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("redis close failed", slog.String("error", err.Error()))
		}
	}
	return ratelimit.NewRedisLimiter(client, cfg.MutationRateLimit, cfg.MutationRateWindow, "ats:mutations", logger), closeFn
}

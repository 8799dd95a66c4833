package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/cartsim/internal/catalog"
	"github.com/utafrali/cartsim/internal/config"
	"github.com/utafrali/cartsim/internal/pricing"
	"github.com/utafrali/cartsim/internal/render"
	"github.com/utafrali/cartsim/internal/repository"
	filerepo "github.com/utafrali/cartsim/internal/repository/file"
	redisrepo "github.com/utafrali/cartsim/internal/repository/redis"
	"github.com/utafrali/cartsim/internal/service"
	"github.com/utafrali/cartsim/internal/session"
)

// App wires together all dependencies and runs the simulator.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	rdb    *redis.Client
	svc    *service.CartService
	cat    *catalog.Catalog

	// In and Out carry the console conversation; they default to the
	// process stdin/stdout and are overridable for tests.
	In  io.Reader
	Out io.Writer
}

// NewApp creates a new application instance, initializing the configured
// persistence backend.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		cat:    catalog.Default(),
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	var repo repository.CartRepository
	switch cfg.Store {
	case config.StoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)

		a.rdb = rdb
		ttl := time.Duration(cfg.CartTTL) * time.Hour
		repo = redisrepo.NewCartRepository(rdb, cfg.CartSlot, ttl, logger)

	default:
		repo = filerepo.NewCartRepository(cfg.StorePath, logger)
		logger.Info("using file cart slot", slog.String("path", cfg.StorePath))
	}

	a.svc = service.NewCartService(repo, a.cat, pricing.NewDefaultResolver(), logger)
	return a, nil
}

// Run drives the console session until it finishes or the context is
// canceled, then shuts down.
func (a *App) Run(ctx context.Context) error {
	sess := session.New(a.In, a.Out, a.svc, a.cat, render.New(a.Out), a.logger)

	if err := sess.Run(ctx); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	return a.Shutdown()
}

// Shutdown releases held resources.
func (a *App) Shutdown() error {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}
	a.logger.Info("simulator shutdown complete")
	return nil
}

package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/elegante-shop/storefront-backend/api/routes"
	"github.com/elegante-shop/storefront-backend/internal/cart"
	"github.com/elegante-shop/storefront-backend/internal/catalog"
	"github.com/elegante-shop/storefront-backend/pkg/config"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
	"github.com/elegante-shop/storefront-backend/pkg/metrics"
	"github.com/elegante-shop/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	cartMetrics := metrics.NewCartMetrics(registry)

	var (
		redisPinger   redis.Pinger
		snapshotStore cart.SnapshotStore
	)
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		redisPinger = redisClient
		snapshotStore, err = cart.NewRedisSnapshotStore(redisClient, cfg.Cart.SnapshotTTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create snapshot store", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, carts are in-memory only")
	}

	store := catalog.DefaultStore()

	notifier, err := cart.NewLogNotifier(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart notifier", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(store, notifier, snapshotStore, cartMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisPinger, store, cartService, httpMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hemteknik/storefront-backend/api/handlers"
	"github.com/hemteknik/storefront-backend/api/routes"
	"github.com/hemteknik/storefront-backend/internal/cart"
	"github.com/hemteknik/storefront-backend/internal/catalog"
	"github.com/hemteknik/storefront-backend/internal/checkout"
	"github.com/hemteknik/storefront-backend/internal/payment"
	"github.com/hemteknik/storefront-backend/pkg/config"
	"github.com/hemteknik/storefront-backend/pkg/kv"
	"github.com/hemteknik/storefront-backend/pkg/logger"
	"github.com/hemteknik/storefront-backend/pkg/redis"
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

	ctx := context.Background()

	var (
		surface kv.Store
		probe   handlers.Pinger
	)
	if cfg.Storage.IsRedis() {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		surface = redisClient
		probe = redisClient
	} else {
		memory := kv.NewMemory()
		surface = memory
		probe = memory
	}

	inventory, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logg.Error(ctx, "failed to load catalog inventory", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewService(inventory)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(ctx, surface)
	if err != nil {
		logg.Error(ctx, "failed to restore cart", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(cartStore, payment.NewMockGateway(cfg.Payment), surface)
	if err != nil {
		logg.Error(ctx, "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Driver,
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, probe, catalogService, cartStore, checkoutService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/api/routes"
	"github.com/tiendahub/storefront-backend/internal/catalog"
	"github.com/tiendahub/storefront-backend/internal/combos"
	"github.com/tiendahub/storefront-backend/internal/pricing"
	"github.com/tiendahub/storefront-backend/pkg/config"
	"github.com/tiendahub/storefront-backend/pkg/db"
	"github.com/tiendahub/storefront-backend/pkg/logger"
	"github.com/tiendahub/storefront-backend/pkg/metrics"
	"github.com/tiendahub/storefront-backend/pkg/migrate"
	"github.com/tiendahub/storefront-backend/pkg/redis"
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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	pricingMetrics := metrics.NewPricingMetrics(prometheus.DefaultRegisterer)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	snapshots, err := catalog.NewSnapshotLoader(catalogRepo, redisClient, cfg.Pricing.RateTableCacheTTL, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot loader", err)
		os.Exit(1)
	}

	calculator := pricing.NewCalculator(decimal.NewFromFloat(cfg.Pricing.MinMarginPercent))
	comboService, err := combos.NewService(
		snapshots,
		combos.NewRepository(dbClient.DB()),
		calculator,
		decimal.NewFromFloat(cfg.Pricing.DefaultProfitMargin),
		pricingMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create combo service", err)
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
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, comboService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

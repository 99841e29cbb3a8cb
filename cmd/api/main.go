package main

import (
	"context"
	"log"
	"time"

	"proculator/internal/core/cache"
	"proculator/internal/core/config"
	"proculator/internal/core/logger"
	"proculator/internal/core/server"
	pincodeadapter "proculator/internal/features/pincode/adapters"
	pincodehandler "proculator/internal/features/pincode/handler"
	pincodeservice "proculator/internal/features/pincode/service"
	ratingdomain "proculator/internal/features/rating/domain"
	ratinghandler "proculator/internal/features/rating/handler"
	ratingservice "proculator/internal/features/rating/service"
	svcadapter "proculator/internal/features/serviceability/adapters"
	svchandler "proculator/internal/features/serviceability/handler"
	svcservice "proculator/internal/features/serviceability/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Proculator API
// @version 1.0
// @description Freight cost estimation: zone-based rating with fuel, ODA, handling, regional and service surcharges.
// @contact.name API Support
// @contact.email support@proculator.in
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Tariff data. The defaults ship with the binary; a quote request may
	// override the settings per call.
	zones := ratingdomain.DefaultZoneMap()
	rates := ratingdomain.DefaultRateTable()
	settings := ratingdomain.DefaultSettings()
	if missing := rates.Validate(zones); len(missing) > 0 {
		l.Warn("Rate table has gaps", zap.Strings("zone_pairs", missing))
	}

	// Redis backs the serviceability store and the pincode cache. Quoting
	// must keep working when it is down, so an unreachable Redis is a
	// warning, not a startup failure.
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis URL", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis unreachable, ODA data and pincode cache degraded", zap.Error(err))
	} else {
		l.Info("Redis connection verified")
	}
	cancel()

	// Serviceability table ingestion and lookups.
	serviceabilityRepo := svcadapter.NewRedisRepository(redisCache)
	serviceabilitySvc := svcservice.NewServiceabilityService(svcadapter.NewCSVParser(), serviceabilityRepo)
	serviceabilityHdl := svchandler.NewServiceabilityHandler(serviceabilitySvc)

	// Rating engine wiring.
	ratingSvc := ratingservice.NewRatingService(zones, rates, settings, serviceabilitySvc)
	ratingHdl := ratinghandler.NewRatingHandler(ratingSvc)

	// Pincode lookup collaborator with caching.
	postalAdapter := pincodeadapter.NewPostalAPIAdapter(
		cfg.Pincode.APIURL,
		time.Duration(cfg.Pincode.TimeoutSeconds)*time.Second,
	)
	cachedProvider := pincodeadapter.NewCachedProvider(
		postalAdapter,
		redisCache,
		time.Duration(cfg.Pincode.CacheTTLSeconds)*time.Second,
	)
	pincodeSvc := pincodeservice.NewLookupService(cachedProvider)
	pincodeHdl := pincodehandler.NewPincodeHandler(pincodeSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/quote", ratingHdl.Quote)
	srv.App.Post("/serviceability", serviceabilityHdl.Upload)
	srv.App.Get("/serviceability/:pincode", serviceabilityHdl.GetRecord)
	srv.App.Delete("/serviceability", serviceabilityHdl.Clear)
	srv.App.Get("/pincode/:code", pincodeHdl.Lookup)
	srv.App.Get("/health", func(c *fiber.Ctx) error {
		redisStatus := "up"
		if err := redisCache.Ping(c.UserContext()); err != nil {
			redisStatus = "down"
		}
		return c.JSON(fiber.Map{"status": "ok", "redis": redisStatus})
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

package main

// @title GeoAPI PT
// @version 1.0.0
// @description API для геоданных Португалии: разрешение GPS координат в административную иерархию (freguesia, concelho, distrito) и выдача почтовых артефактов по кодам CP4 и CP4-CP3.
// @description
// @description Основные возможности:
// @description - Разрешение точки в freguesia/concelho/distrito по границам
// @description - Выдача артефактов почтовых кодов (полных и префиксных)
// @description - Справочные запросы по округам, муниципалитетам и приходам

// @contact.name API Support
// @contact.email support@geoapi-pt.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geoapi-pt/docs/swagger"
	"github.com/geoapi-pt/internal/config"
	httpDelivery "github.com/geoapi-pt/internal/delivery/http"
	"github.com/geoapi-pt/internal/delivery/http/handler"
	"github.com/geoapi-pt/internal/domain"
	domainRepo "github.com/geoapi-pt/internal/domain/repository"
	"github.com/geoapi-pt/internal/geoindex"
	"github.com/geoapi-pt/internal/pkg/logger"
	"github.com/geoapi-pt/internal/repository/artifact"
	"github.com/geoapi-pt/internal/repository/cache"
	"github.com/geoapi-pt/internal/repository/geodata"
	"github.com/geoapi-pt/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting GeoAPI PT")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load administrative boundaries and build the spatial index
	regions, err := geodata.LoadRegions(cfg.Data.BoundariesPath, log)
	if err != nil {
		log.Fatal("Failed to load boundaries", zap.Error(err))
	}
	regionSet := domain.NewRegionSet(regions)

	index, err := geoindex.Build(regions, log)
	if err != nil {
		log.Fatal("Failed to build spatial index", zap.Error(err))
	}
	resolver := geoindex.NewResolver(index, regionSet, log)

	log.Info("Spatial index ready",
		zap.Int("regions", len(regions)),
		zap.Int("cells", index.Size()),
	)

	// 4. Artifact store (the worker writes it, the API reads it)
	store := artifact.NewStore(cfg.Artifacts.Root, log)

	// 5. Connect to Redis (optional)
	var cacheRepo domainRepo.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, responses are not cached")
	}

	// 6. Initialize Use Cases
	gpsUC := usecase.NewGPSUseCase(resolver, cacheRepo, log, cfg.Cache.GPSCacheTTL)
	postalUC := usecase.NewPostalUseCase(store, cacheRepo, log, cfg.Cache.PostalCacheTTL)
	registryUC := usecase.NewRegistryUseCase(regionSet, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	gpsHandler := handler.NewGPSHandler(gpsUC, log)
	postalHandler := handler.NewPostalHandler(postalUC, log)
	registryHandler := handler.NewRegistryHandler(registryUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, gpsHandler, postalHandler, registryHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

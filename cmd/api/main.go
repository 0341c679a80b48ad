package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/cache"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/config"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/httpclient"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/logger"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/proxy"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/server"
	bucketdomain "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
	buckethandler "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/handler"
	bucketservice "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/service"
	mappingadapters "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/adapters"
	mappinghandler "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/handler"
	mappingservice "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/service"
	trackingadapters "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/adapters"
	trackinghandler "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/handler"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/ports"
	trackingservice "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Lorrigo Status API
// @version 1.0
// @description Canonical shipment-status classification for courier tracking updates.
// @contact.name API Support
// @contact.email support@lorrigo.com
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

	// Initialize the config store and verify connectivity.
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// One resolver instance shared by every caller.
	resolver := bucketdomain.NewResolver()

	// Mappings: load the externally-sourced vendor dictionaries at startup.
	mappingRepo := mappingadapters.NewRedisMappingRepository(redisCache, cfg.Mappings.CacheKey)
	mappingSvc := mappingservice.NewMappingService(mappingRepo, resolver)
	if vendors, err := mappingSvc.Reload(ctx); err != nil {
		// Mappings are an extension of the built-in tables; the built-ins
		// keep the service usable until the store recovers.
		l.Warn("Could not load external vendor mappings", zap.Error(err))
	} else {
		l.Info("External vendor mappings loaded", zap.Int("vendors", vendors))
	}
	mappingHdl := mappinghandler.NewMappingHandler(mappingSvc)

	// Status classification surface.
	statusSvc := bucketservice.NewStatusService(resolver)
	statusHdl := buckethandler.NewStatusHandler(statusSvc)

	// Tracking: webhook processing and vendor polling.
	vendorClient := httpclient.NewClientWithProxy(
		time.Duration(cfg.Vendors.HTTPTimeoutSeconds)*time.Second,
		proxy.Settings{
			Enabled:  cfg.Proxy.Enabled,
			Hostname: cfg.Proxy.Hostname,
			Port:     cfg.Proxy.Port,
			Username: cfg.Proxy.Username,
			Password: cfg.Proxy.Password,
		},
	)
	sources := buildEventSources(cfg.Vendors, vendorClient)

	processor := trackingservice.NewProcessor(resolver)
	poller := trackingservice.NewPoller(sources, processor)
	trackingHdl := trackinghandler.NewTrackingHandler(processor, poller)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/v1/status/classify", statusHdl.Classify)
	srv.App.Get("/v1/status/buckets", statusHdl.ListBuckets)
	srv.App.Get("/v1/status/families/:name", statusHdl.ExpandFamily)
	srv.App.Get("/v1/status/final/:status", statusHdl.Finality)

	srv.App.Post("/v1/webhooks/tracking/:vendor", trackingHdl.Webhook)
	srv.App.Get("/v1/tracking/:vendor/:awb", trackingHdl.Poll)

	srv.App.Put("/v1/admin/mappings", mappingHdl.PutMappings)
	srv.App.Post("/v1/admin/mappings/reload", mappingHdl.ReloadMappings)
	srv.App.Get("/v1/admin/status-cache", mappingHdl.CacheStats)
	srv.App.Delete("/v1/admin/status-cache", mappingHdl.ClearCache)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// buildEventSources creates one tracking client per vendor with a configured
// endpoint. Vendors without a URL are served by webhooks only.
func buildEventSources(cfg config.VendorAPIConfig, client *http.Client) []ports.EventSource {
	endpoints := map[string]string{
		bucketdomain.VendorDelhivery:   cfg.DelhiveryURL,
		bucketdomain.VendorShiprocket:  cfg.ShiprocketURL,
		bucketdomain.VendorSmartship:   cfg.SmartshipURL,
		bucketdomain.VendorEcomExpress: cfg.EcomExpressURL,
		bucketdomain.VendorXpressbees:  cfg.XpressbeesURL,
	}

	sources := make([]ports.EventSource, 0, len(endpoints))
	for vendor, url := range endpoints {
		if url == "" {
			continue
		}
		sources = append(sources, trackingadapters.NewVendorAPIClient(vendor, url, client))
	}
	return sources
}

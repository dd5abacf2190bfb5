package main

import (
	log "github.com/sirupsen/logrus"

	"cafe-backend/config"
	httpapi "cafe-backend/internal/api/http"
	"cafe-backend/internal/service"
	"cafe-backend/internal/storage"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg)

	db := config.MustInitPostgres(cfg)
	repo := storage.NewPostgresRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		log.Fatal("failed to migrate schema: ", err)
	}

	var cache service.MenuCacheStore
	if client := config.MustInitRedis(cfg); client != nil {
		cache = storage.NewMenuCache(client, cfg.MenuCacheTTL)
		log.Info("menu cache enabled")
	}

	var publisher service.OrderEventPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.WithField("topic", cfg.KafkaTopic).Info("order event publishing enabled")
	}

	logger := log.StandardLogger()
	catalog := service.NewCatalogService(repo, repo, cache, logger)
	users := service.NewUserService(repo, logger)
	orders := service.NewOrderService(repo, publisher, service.TicketQRGenerator{BaseURL: cfg.TicketBaseURL}, logger)

	handler := httpapi.NewHandler(catalog, users, orders, httpapi.PageLimits{
		Default: cfg.DefaultPageSize,
		Max:     cfg.MaxPageSize,
	})
	router := httpapi.NewRouter(handler, cfg.CORSOrigins)

	httpapi.StartServer(cfg.ListenAddr, router)
}

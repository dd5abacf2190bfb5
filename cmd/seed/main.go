package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"cafe-backend/config"
	"cafe-backend/internal/seed"
	"cafe-backend/internal/service"
	"cafe-backend/internal/storage"
)

func main() {
	path := flag.String("file", "seed.yaml", "path to the YAML seed catalog")
	flag.Parse()

	cfg := config.Load()
	config.SetupLogging(cfg)

	db := config.MustInitPostgres(cfg)
	repo := storage.NewPostgresRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		log.Fatal("failed to migrate schema: ", err)
	}

	logger := log.StandardLogger()
	catalog := service.NewCatalogService(repo, repo, nil, logger)
	users := service.NewUserService(repo, logger)

	data, err := seed.Load(*path)
	if err != nil {
		log.Fatal("failed to load seed file: ", err)
	}
	if err := seed.Apply(data, catalog, users, logger); err != nil {
		log.Fatal("seeding failed: ", err)
	}
	log.Info("seeding complete")
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/repository"
	"talent-match/internal/seeder"
	"talent-match/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "[talent-match] ", log.LstdFlags)

	st, err := app.OpenStore(cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Printf("store close error: %v", err)
		}
	}()

	ds, err := seeder.LoadDataset(cfg.Store.SeedFile)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.NewDemoUserSeeder(repository.NewStoreUserRepository(st), ds.Users, logger),
		seeder.NewDemoJobSeeder(repository.NewStoreJobRepository(st), ds.Jobs, logger),
		seeder.NewMatchSeeder(repository.NewStoreMatchRepository(st), ds.Matches, logger),
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runner.Run(ctx); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	// The server may be up with warm list/stats keys; drop them so the next
	// read sees the reseeded collections.
	c := cache.NewRedis(cfg.Redis, logger)
	for _, col := range []string{storage.CollectionUsers, storage.CollectionJobs, storage.CollectionMatches} {
		_ = c.InvalidateCollection(ctx, col)
	}
	_ = c.Close()

	logger.Println("seeding complete")
}

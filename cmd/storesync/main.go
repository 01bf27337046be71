package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/zubalebr/contestacoes-backend/config"
	"github.com/zubalebr/contestacoes-backend/internal/app/service"
	"github.com/zubalebr/contestacoes-backend/pkg/redis"
)

// storesync loads a store-list XLSX export and warms the Redis cache the
// API serves from, so a sheet swap does not wait for the hourly refresh.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/storesync/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.Redis.Host == "" {
		log.Fatal("REDIS_HOST is not configured")
	}

	source := &service.XLSXStoreSource{Path: filePath}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	raw, err := source.FetchStoreColumn(ctx)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	stores := service.NormalizeStores(raw)
	fmt.Printf("Stores after dedupe/sort: %d (from %d rows)\n", len(stores), len(raw))

	fmt.Print("Do you want to overwrite the store cache? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Sync cancelled.")
		return
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	if err := redis.SetStoreListWith(ctx, client, stores, cfg.Validation.StoreCacheTTL); err != nil {
		log.Fatal("Failed to write store cache:", err)
	}

	fmt.Println("Store cache updated successfully!")
	fmt.Printf("Total stores cached: %d (TTL %s)\n", len(stores), cfg.Validation.StoreCacheTTL)
}

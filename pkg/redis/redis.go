package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zubalebr/contestacoes-backend/config"
	"github.com/zubalebr/contestacoes-backend/pkg/logger"
)

// Key shared with cmd/storesync, which warms the cache out of band.
const storeListKey = "stores:list"

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// SetStoreList caches the normalized store list for ttl.
func SetStoreList(ctx context.Context, stores []string, ttl time.Duration) error {
	return SetStoreListWith(ctx, client, stores, ttl)
}

// GetStoreList returns the cached store list, or (nil, nil) on a cache miss.
func GetStoreList(ctx context.Context) ([]string, error) {
	if client == nil {
		return nil, nil
	}

	val, err := client.Get(ctx, storeListKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to read store list from Redis", err, nil)
		return nil, err
	}

	var stores []string
	if err := json.Unmarshal([]byte(val), &stores); err != nil {
		logger.Error("Corrupt store list cache entry", err, nil)
		return nil, err
	}

	return stores, nil
}

// SetStoreListWith writes the store list through an explicit client.
// cmd/storesync uses this with its own short-lived connection.
func SetStoreListWith(ctx context.Context, c *redis.Client, stores []string, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(stores)
	if err != nil {
		return fmt.Errorf("failed to marshal store list: %w", err)
	}

	if err := c.Set(ctx, storeListKey, data, ttl).Err(); err != nil {
		logger.Error("Failed to cache store list", err, map[string]interface{}{
			"count": len(stores),
		})
		return err
	}

	logger.Debug("Store list cached", map[string]interface{}{
		"count": len(stores),
		"ttl":   ttl.String(),
	})
	return nil
}

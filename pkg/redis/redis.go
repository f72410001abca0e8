package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/solemate/solemate-backend/config"
	"github.com/solemate/solemate-backend/pkg/logger"
)

const searchKeyPrefix = "shoesearch:"

var client *redis.Client

// Init initializes the Redis connection used for the search-result cache.
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

// GetClient returns the Redis client instance.
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection.
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// CacheSearchResults stores a serialized search result under the normalized
// query key.
func CacheSearchResults(ctx context.Context, queryKey string, payload []byte, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	if err := client.Set(ctx, searchKeyPrefix+queryKey, payload, ttl).Err(); err != nil {
		logger.Error("Failed to cache search results", err, map[string]interface{}{
			"query": queryKey,
		})
		return err
	}
	return nil
}

// GetCachedSearch returns the cached payload for a query key, if present.
func GetCachedSearch(ctx context.Context, queryKey string) ([]byte, bool, error) {
	if client == nil {
		return nil, false, nil
	}
	payload, err := client.Get(ctx, searchKeyPrefix+queryKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		logger.Error("Failed to read cached search results", err, map[string]interface{}{
			"query": queryKey,
		})
		return nil, false, err
	}
	return payload, true, nil
}

// FlushSearchCache drops every cached search result. Called after a catalog
// snapshot reload so stale results never outlive the data they came from.
func FlushSearchCache(ctx context.Context) error {
	if client == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, searchKeyPrefix+"*", 100).Result()
		if err != nil {
			logger.Error("Failed to scan search cache keys", err, nil)
			return err
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				logger.Error("Failed to delete search cache keys", err, map[string]interface{}{
					"count": len(keys),
				})
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	logger.Debug("Search cache flushed", nil)
	return nil
}

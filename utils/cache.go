package utils

import (
	"context"
	"log"
	"time"

	"sweetdots/config"

	"github.com/go-redis/redis/v8"
)

var (
	// GridCacheClient caches fetched spreadsheet grids.
	GridCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for the revoked-token store.
	AuthCacheClient *redis.Client
)

// InitGridCache initializes the Redis client used for caching sheet grids.
func InitGridCache() {
	GridCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := GridCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Grid Cache): %v", err)
	}
}

// GetGridCacheClient returns the grid cache client.
func GetGridCacheClient() *redis.Client {
	if GridCacheClient == nil {
		InitGridCache()
	}
	return GridCacheClient
}

// InitAuthCache initializes the Redis client for the revoked-token store.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for the revoked-token store.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"trimly/config"
)

// HoldCacheClient holds booking sessions and slot holds.
var HoldCacheClient *redis.Client

// InitHoldCache initializes the Redis client backing slot holds and booking
// sessions (DB from AppConfig).
func InitHoldCache() {
	HoldCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := HoldCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Hold Cache): %v", err)
	}
}

// GetHoldCacheClient returns the hold cache client.
func GetHoldCacheClient() *redis.Client {
	if HoldCacheClient == nil {
		InitHoldCache()
	}
	return HoldCacheClient
}

package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe of trimly's external dependencies: the
// Mongo store behind the repositories and the Redis database holding
// booking sessions and slot holds.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	HoldCache bool      `json:"holdCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// checkHealth pings both dependencies. A nil client counts as unhealthy.
func checkHealth(ctx context.Context, holdCache *redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if holdCache != nil {
		status.HoldCache = holdCache.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(holdCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := checkHealth(ctx, holdCache, mongoClient)
			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}

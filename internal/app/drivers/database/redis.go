package database

import (
	"clinic-dashboard/internal/app/config"
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when no Redis host is configured.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	if driverConfig.Redis.Host == "" {
		log.Println("Redis host is empty, using in-memory UI state")
		return nil
	}

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	log.Println("Successfully connected to Redis")
	return rdb
}

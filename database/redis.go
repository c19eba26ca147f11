package database

import (
	"context"
	"log"
	"time"

	"prephub_backend/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// ConnectRedis opens the session store used for refresh tokens.
func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}
	log.Println("Connection Opened to Redis")
}

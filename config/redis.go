package config

import (
	"context"
	"os"

	"github.com/go-redis/redis/v8"
)

// RedisClient bernilai nil jika REDIS_ADDR tidak diset; caching dimatikan.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

func RedisCtx() context.Context {
	return context.Background()
}

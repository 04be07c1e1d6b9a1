package config

import (
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}
	log.Println("✅ Connected to Redis:", res)
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
		log.Println("✅ Redis connection closed")
	}
}

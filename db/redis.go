package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

var RedisClient *redis.Client

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// DefaultRedisConfig returns the pool and timeout settings used for the
// cache connection.
func DefaultRedisConfig(url string) RedisConfig {
	return RedisConfig{
		URL:          url,
		PoolSize:     10,
		DialTimeout:  30 * time.Second,
		MinIdleConns: 5,
		ReadTimeout:  30 * time.Second,
		MaxRetries:   3,
	}
}

// InitRedis initializes the package-level Redis client and verifies the
// connection with a ping.
func InitRedis(url string) error {
	client, err := NewRedisClient(DefaultRedisConfig(url))
	if err != nil {
		return err
	}

	RedisClient = client
	log.Println("Redis connection initialized successfully.")
	return nil
}

func NewRedisClient(config RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Redis URL")
	}
	opt.DialTimeout = config.DialTimeout
	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping Redis server")
	}

	return client, nil
}

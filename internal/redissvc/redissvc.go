package redissvc

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/product-catalog/internal/config"
)

type RedisService struct {
	rdb *redis.Client
}

// NewRedisService connects to redis and checks the connection.
func NewRedisService(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisService{rdb: rdb}, nil
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}

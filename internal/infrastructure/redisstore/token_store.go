// Package redisstore holds Redis-backed adapters.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/auth"
)

const refreshPrefix = "refresh:"

var _ auth.TokenStore = (*TokenStore)(nil)

// TokenStore keeps refresh tokens in Redis; TTL handles expiry.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore pings the server once to fail fast on bad configuration.
func NewTokenStore(ctx context.Context, addr, password string, db int) (*TokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &TokenStore{client: client}, nil
}

func (s *TokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshPrefix+token, userID, ttl).Err()
}

func (s *TokenStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, refreshPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshPrefix+token).Err()
}

// Close releases the underlying connection pool.
func (s *TokenStore) Close() error {
	return s.client.Close()
}

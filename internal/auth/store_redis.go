// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blessy228/daily-scripture-path/internal/platform/apperr"
	"github.com/blessy228/daily-scripture-path/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// Refresh sessions are volatile by nature: Redis TTL handles expiry, so no
// cleanup job is needed.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates the Redis-backed [SessionRepository].
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (repository *RedisSessionRepository) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + token
	if err := repository.client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Get(ctx context.Context, token string) (string, error) {
	key := constants.RedisPrefixSession + token

	userID, err := repository.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return userID, nil
}

func (repository *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	key := constants.RedisPrefixSession + token
	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

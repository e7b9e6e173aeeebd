package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mutqin:session:"

// RedisStore persists session tokens in Redis so that sessions survive
// restarts and can be shared across instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(host, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisStore) Connect(ctx context.Context) error {
	log.Println("[REDIS] Connecting to Redis...")

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[REDIS] Connected successfully")
	return nil
}

func (r *RedisStore) SetToken(ctx context.Context, sid, token string) error {
	// No TTL: tokens have no client-side expiry, they live until the
	// backend rejects them and the slot is cleared.
	if err := r.client.Set(ctx, redisKeyPrefix+sid, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Token(ctx context.Context, sid string) (string, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+sid).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return normalize(raw), nil
}

func (r *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

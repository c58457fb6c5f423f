package infra

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cadastromunicipal.com/internal/domain"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps opaque session tokens in Redis with a TTL. The
// cookie carries only the token; everything else lives server-side.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	value := strconv.FormatUint(uint64(userID), 10)
	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, value, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	value, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrSessionMiss
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, domain.ErrSessionMiss
	}
	return uint(id), nil
}

func (s *RedisSessionStore) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}

package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore 适合多实例部署，键统一加前缀
type RedisStore struct {
	Redis  *redis.Client
	Prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Redis: rdb, Prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.Prefix + k
}

func (s *RedisStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	val, err := s.Redis.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return val, err
}

func (s *RedisStore) SetItem(ctx context.Context, key string, value []byte) error {
	return s.Redis.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisStore) RemoveItem(ctx context.Context, key string) error {
	return s.Redis.Del(ctx, s.key(key)).Err()
}

func (s *RedisStore) Close() error {
	return s.Redis.Close()
}

package kv

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore stores each document as a plain string key without expiry
type RedisStore struct {
	rdb    goredis.Cmdable
	prefix string
}

// NewRedisStore creates a RedisStore; prefix namespaces every key
func NewRedisStore(rdb goredis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

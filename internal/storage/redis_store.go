package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const slotPrefix = "storefront:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, slot string) ([]byte, error) {
	val, err := s.client.Get(ctx, slotPrefix+slot).Bytes()
	if err == redis.Nil {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *RedisStore) Save(ctx context.Context, slot string, value []byte) error {
	return s.client.Set(ctx, slotPrefix+slot, value, 0).Err()
}

package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
)

type BlobStore struct {
	client *redis.Client
	prefix string
}

func NewBlobStore(client *redis.Client, prefix string) *BlobStore {
	return &BlobStore{client: client, prefix: prefix}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrBlobNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

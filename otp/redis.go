package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists pending codes in Redis so verification survives
// process restarts and works across replicas. Expiry is enforced by the
// key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ Store = (*RedisStore)(nil)

func key(identifier string) string {
	return "otp:" + identifier
}

func (s *RedisStore) Put(ctx context.Context, identifier string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal otp record: %w", err)
	}

	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, key(identifier), data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, identifier string) (Record, bool, error) {
	data, err := s.client.Get(ctx, key(identifier)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("unmarshal otp record: %w", err)
	}
	return rec, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, identifier string) error {
	return s.client.Del(ctx, key(identifier)).Err()
}

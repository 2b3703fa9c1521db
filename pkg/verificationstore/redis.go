package verificationstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v7"

	"github.com/chainsafe/social-verifier/pkg/verification"
)

const recordsKey = "verifications"

// RedisStore keeps every record as a JSON field of one hash, keyed by wallet.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a RedisStore whose hash lives at keyPrefix+"verifications".
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    keyPrefix + recordsKey,
	}
}

func (s *RedisStore) Exists(ctx context.Context, wallet string) (bool, error) {
	ok, err := s.client.WithContext(ctx).HExists(s.key, wallet).Result()
	if err != nil {
		return false, fmt.Errorf("redis HEXISTS %s: %w", wallet, err)
	}
	return ok, nil
}

func (s *RedisStore) Get(ctx context.Context, wallet string) (*verification.Record, error) {
	data, err := s.client.WithContext(ctx).HGet(s.key, wallet).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis HGET %s: %w", wallet, err)
	}

	var rec verification.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode verification %s: %w", wallet, err)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, rec *verification.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode verification %s: %w", rec.WalletAddress, err)
	}
	if err := s.client.WithContext(ctx).HSet(s.key, rec.WalletAddress, data).Err(); err != nil {
		return fmt.Errorf("redis HSET %s: %w", rec.WalletAddress, err)
	}
	return nil
}

func (s *RedisStore) Count(ctx context.Context) (int, error) {
	n, err := s.client.WithContext(ctx).HLen(s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis HLEN: %w", err)
	}
	return int(n), nil
}

// Package verificationstore persists verification records keyed by normalized
// wallet address. Memory, postgres and redis backends share the same semantics:
// Save replaces any existing record for the wallet.
package verificationstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v7"

	"github.com/chainsafe/social-verifier/pkg/config"
	"github.com/chainsafe/social-verifier/pkg/pgutil"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

// ErrNotFound is returned when no record exists for a wallet.
var ErrNotFound = errors.New("verification not found")

// Store defines verification record persistence
type Store interface {
	Exists(ctx context.Context, wallet string) (bool, error)
	Get(ctx context.Context, wallet string) (*verification.Record, error)
	Save(ctx context.Context, rec *verification.Record) error
	Count(ctx context.Context) (int, error)
}

// Open builds the store selected by cfg.Driver. The returned close function
// releases any connection the store holds.
func Open(ctx context.Context, cfg *config.StoreConfig) (Store, func() error, error) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return NewMemoryStore(), func() error { return nil }, nil

	case config.StorePostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return NewPGStore(db), db.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.WithContext(ctx).Ping().Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis %s: %w", cfg.Redis.Address, err)
		}
		return NewRedisStore(client, cfg.Redis.KeyPrefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

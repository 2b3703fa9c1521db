package verificationstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/social-verifier/pkg/verification"
)

type pgStore struct {
	db *bun.DB
}

// NewPGStore creates a new postgres implementation of the verification store
func NewPGStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Exists(ctx context.Context, wallet string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*VerificationDao)(nil)).
		Where("wallet_address = ?", wallet).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check verification exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) Get(ctx context.Context, wallet string) (*verification.Record, error) {
	dao := new(VerificationDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", wallet).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}
	return toRecord(dao), nil
}

func (s *pgStore) Save(ctx context.Context, rec *verification.Record) error {
	_, err := s.db.NewInsert().
		Model(toVerificationDao(rec)).
		On("CONFLICT (wallet_address) DO UPDATE").
		Set("original_wallet_address = EXCLUDED.original_wallet_address").
		Set("blockchain_type = EXCLUDED.blockchain_type").
		Set("is_crosschain = EXCLUDED.is_crosschain").
		Set("twitter_handle = EXCLUDED.twitter_handle").
		Set("verification_method = EXCLUDED.verification_method").
		Set("verified = EXCLUDED.verified").
		Set("verified_at = EXCLUDED.verified_at").
		Set("tweet_id = EXCLUDED.tweet_id").
		Set("bridge_info = EXCLUDED.bridge_info").
		Set("flare_verification = EXCLUDED.flare_verification").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}
	return nil
}

func (s *pgStore) Count(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().Model((*VerificationDao)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count verifications: %w", err)
	}
	return n, nil
}

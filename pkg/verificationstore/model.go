package verificationstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/social-verifier/pkg/address"
	"github.com/chainsafe/social-verifier/pkg/bridge"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

// VerificationDao maps to the 'flare_verifications' table in PostgreSQL.
// Attestation metadata and bridge info are stored as jsonb.
type VerificationDao struct {
	bun.BaseModel         `bun:"table:flare_verifications,alias:fv"`
	WalletAddress         string                         `bun:"wallet_address,pk,type:varchar(42)"`
	OriginalWalletAddress string                         `bun:"original_wallet_address,notnull,type:varchar(42)"`
	BlockchainType        string                         `bun:"blockchain_type,notnull,type:varchar(16)"`
	Crosschain            bool                           `bun:"is_crosschain,notnull"`
	TwitterHandle         string                         `bun:"twitter_handle,notnull,type:varchar(15)"`
	VerificationMethod    string                         `bun:"verification_method,notnull,type:varchar(16)"`
	Verified              bool                           `bun:"verified,notnull"`
	VerifiedAt            time.Time                      `bun:"verified_at,notnull"`
	TweetID               string                         `bun:"tweet_id,notnull,type:text"`
	BridgeInfo            *bridge.Info                   `bun:"bridge_info,type:jsonb"`
	FlareVerification     verification.FlareVerification `bun:"flare_verification,notnull,type:jsonb"`
	UpdatedAt             time.Time                      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toVerificationDao(rec *verification.Record) *VerificationDao {
	return &VerificationDao{
		WalletAddress:         rec.WalletAddress,
		OriginalWalletAddress: rec.OriginalWalletAddress,
		BlockchainType:        string(rec.BlockchainType),
		Crosschain:            rec.IsCrosschainVerification,
		TwitterHandle:         rec.TwitterHandle,
		VerificationMethod:    rec.VerificationMethod,
		Verified:              rec.Verified,
		VerifiedAt:            rec.VerifiedAt,
		TweetID:               rec.TweetID,
		BridgeInfo:            rec.BridgeInfo,
		FlareVerification:     rec.FlareVerification,
	}
}

func toRecord(dao *VerificationDao) *verification.Record {
	return &verification.Record{
		WalletAddress:            dao.WalletAddress,
		OriginalWalletAddress:    dao.OriginalWalletAddress,
		BlockchainType:           address.ChainType(dao.BlockchainType),
		IsCrosschainVerification: dao.Crosschain,
		TwitterHandle:            dao.TwitterHandle,
		VerificationMethod:       dao.VerificationMethod,
		Verified:                 dao.Verified,
		VerifiedAt:               dao.VerifiedAt.UTC(),
		TweetID:                  dao.TweetID,
		BridgeInfo:               dao.BridgeInfo,
		FlareVerification:        dao.FlareVerification,
	}
}

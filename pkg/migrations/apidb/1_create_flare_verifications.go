package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/social-verifier/pkg/pgutil/migrations"
	"github.com/chainsafe/social-verifier/pkg/verificationstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating flare_verifications table...")
		if err := mghelper.CreateSchema(ctx, db, &verificationstore.VerificationDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &verificationstore.VerificationDao{}, "twitter_handle", "blockchain_type")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping flare_verifications table...")
		if err := mghelper.DropModelIndexes(ctx, db, &verificationstore.VerificationDao{}, "twitter_handle", "blockchain_type"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &verificationstore.VerificationDao{})
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/internal/metrics"
	apperrors "github.com/chainsafe/social-verifier/pkg/app/errors"
	"github.com/chainsafe/social-verifier/pkg/address"
	"github.com/chainsafe/social-verifier/pkg/attestation"
	"github.com/chainsafe/social-verifier/pkg/bridge"
	"github.com/chainsafe/social-verifier/pkg/verification"
	"github.com/chainsafe/social-verifier/pkg/verificationstore"
)

const mockSuccessMessage = "Twitter account successfully verified via Flare FDC (mock mode)"

var (
	ErrAlreadyVerified = errors.New("wallet address already verified")
	ErrTweetMismatch   = errors.New("tweet does not contain wallet address")
	ErrMissingHashtags = errors.New("tweet is missing required hashtags")
)

// Store is the narrow data-access interface for the verification service.
// Records are keyed by normalized wallet address.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Exists(ctx context.Context, wallet string) (bool, error)
	Get(ctx context.Context, wallet string) (*verification.Record, error)
	Save(ctx context.Context, rec *verification.Record) error
}

// Service defines the verification business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Verify(ctx context.Context, req *verification.VerifyRequest, opts verification.Options) (*verification.VerifyResponse, error)
	GetStatus(ctx context.Context, wallet string) (*verification.Record, error)
}

// Bridge synthesizes the cross-chain gas relay for flow wallets.
type Bridge interface {
	Simulate(sourceAddress string) *bridge.Info
}

// Roller draws the uniform number deciding simulated failures.
type Roller interface {
	Float64() float64
}

// Providers pairs the simulated attestation backend with the live one.
type Providers struct {
	Mock attestation.Provider
	Live attestation.Provider
}

type verificationService struct {
	store              Store
	bridge             Bridge
	providers          Providers
	roller             Roller
	failureProbability float64
	validate           *validator.Validate
	logger             *zap.Logger
	now                func() time.Time
}

// NewService creates a new verification service. A nil Live provider means
// real verification is not available.
func NewService(
	store Store,
	bridge Bridge,
	providers Providers,
	roller Roller,
	failureProbability float64,
	logger *zap.Logger,
) Service {
	if providers.Live == nil {
		providers.Live = attestation.Unimplemented{}
	}
	return &verificationService{
		store:              store,
		bridge:             bridge,
		providers:          providers,
		roller:             roller,
		failureProbability: failureProbability,
		validate:           validator.New(),
		logger:             logger,
		now:                time.Now,
	}
}

// Verify links a Twitter account to a wallet.
//
// The pipeline:
//  1. Validates required fields, wallet, handle and tweet reference
//  2. Rejects already verified wallets unless opts.Demo is set
//  3. In live mode, defers entirely to the live provider
//  4. Simulates the gas bridge for flow wallets
//  5. Rolls the simulated failure unless opts.ForceSuccess is set
//  6. Attests through the mock provider and stores the record
func (s *verificationService) Verify(
	ctx context.Context,
	req *verification.VerifyRequest,
	opts verification.Options,
) (resp *verification.VerifyResponse, err error) {
	start := s.now()
	defer func() {
		metrics.VerificationDuration.Observe(time.Since(start).Seconds())
		metrics.VerificationsTotal.WithLabelValues(resultLabel(err)).Inc()
	}()

	if req == nil || s.validate.Struct(req) != nil {
		return nil, apperrors.BadRequestError(nil, "Missing required fields: walletAddress, twitterHandle, tweetUrl")
	}
	if err := address.Validate(req.WalletAddress); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid wallet address format")
	}
	if err := address.ValidateTwitterHandle(req.TwitterHandle); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid Twitter handle format")
	}
	tweetID, ok := address.ExtractTweetID(req.TweetURL)
	if !ok {
		return nil, apperrors.BadRequestError(address.ErrInvalidTweet, "Invalid tweet URL format")
	}

	wallet := address.Normalize(req.WalletAddress)
	handle := address.NormalizeTwitterHandle(req.TwitterHandle)
	chain := address.Classify(req.WalletAddress)

	exists, err := s.store.Exists(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to check verification existence: %w", err)
	}
	if exists && !opts.Demo {
		return nil, apperrors.ConflictError(ErrAlreadyVerified, "Wallet address already verified via Flare")
	}

	expectedContent := verification.TweetContent(req.WalletAddress)
	attReq := attestation.Request{
		TweetID:         tweetID,
		TwitterHandle:   handle,
		WalletAddress:   wallet,
		ExpectedContent: expectedContent,
	}

	if !opts.Mock {
		res, err := s.providers.Live.Attest(ctx, attReq)
		if err != nil {
			if errors.Is(err, attestation.ErrNotImplemented) {
				return nil, apperrors.NotImplementedError(err, "Real Flare verification not implemented yet. Please use mock mode.")
			}
			return nil, apperrors.DependencyError(err, "Flare attestation failed")
		}
		rec := s.newRecord(req.WalletAddress, wallet, handle, chain, tweetID, nil, res)
		return s.save(ctx, rec, res, exists, "Twitter account successfully verified via Flare FDC")
	}

	var bridgeInfo *bridge.Info
	if chain == address.Flow {
		bridgeInfo = s.bridge.Simulate(wallet)
		s.logger.Debug("Simulated cross-chain bridge",
			zap.String("wallet", wallet),
			zap.String("bridge_id", bridgeInfo.BridgeID),
		)
	}

	if !opts.ForceSuccess && s.roller.Float64() < s.failureProbability {
		return nil, apperrors.BadRequestWithDetails(ErrTweetMismatch,
			"Tweet does not contain the specified wallet address. Please ensure your tweet includes the exact wallet address provided.",
			&verification.FailureDetails{
				ExpectedWallet:  wallet,
				ExpectedContent: expectedContent,
				Troubleshooting: verification.Troubleshooting,
			},
		)
	}

	if missing := verification.MissingHashtags(expectedContent); len(missing) > 0 {
		return nil, apperrors.BadRequestError(ErrMissingHashtags,
			"Tweet is missing required hashtags: "+strings.Join(missing, ", "))
	}

	res, err := s.providers.Mock.Attest(ctx, attReq)
	if err != nil {
		return nil, fmt.Errorf("mock attestation failed: %w", err)
	}
	res.Response.ResponseBody.Tweet.Text = expectedContent
	res.Response.ResponseBody.WalletMentioned = true
	res.Response.ResponseBody.VerificationStatus = attestation.StatusVerified

	rec := s.newRecord(req.WalletAddress, wallet, handle, chain, tweetID, bridgeInfo, res)
	return s.save(ctx, rec, res, exists, mockSuccessMessage)
}

// GetStatus returns the stored record for wallet.
// A ResourceNotFound error is returned when the wallet was never verified.
func (s *verificationService) GetStatus(ctx context.Context, wallet string) (*verification.Record, error) {
	if wallet == "" || address.Validate(wallet) != nil {
		return nil, apperrors.BadRequestError(address.ErrInvalidAddress, "Invalid or missing wallet address")
	}

	rec, err := s.store.Get(ctx, address.Normalize(wallet))
	if err != nil {
		if errors.Is(err, verificationstore.ErrNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "No Flare verification found for this wallet address")
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}
	return rec, nil
}

func (s *verificationService) newRecord(
	original, wallet, handle string,
	chain address.ChainType,
	tweetID string,
	bridgeInfo *bridge.Info,
	res *attestation.Result,
) *verification.Record {
	return &verification.Record{
		WalletAddress:            wallet,
		OriginalWalletAddress:    original,
		BlockchainType:           chain,
		IsCrosschainVerification: chain == address.Flow,
		TwitterHandle:            handle,
		VerificationMethod:       verification.MethodFlare,
		Verified:                 true,
		VerifiedAt:               s.now().UTC(),
		TweetID:                  tweetID,
		BridgeInfo:               bridgeInfo,
		FlareVerification: verification.FlareVerification{
			RequestID:             res.Response.RequestID,
			TxHash:                res.TxHash,
			TweetID:               tweetID,
			TwitterUserID:         res.TwitterUserID,
			TwitterHandle:         handle,
			WalletAddress:         wallet,
			OriginalWalletAddress: original,
			BlockchainType:        chain,
			FDCAttestation:        res.Attestation,
		},
	}
}

func (s *verificationService) save(
	ctx context.Context,
	rec *verification.Record,
	res *attestation.Result,
	replaced bool,
	message string,
) (*verification.VerifyResponse, error) {
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save verification: %w", err)
	}
	if !replaced {
		metrics.StoredVerifications.Inc()
	}

	return &verification.VerifyResponse{
		Success:         true,
		Message:         message,
		Verification:    rec,
		FDCResponse:     res.Response,
		TransactionHash: res.TxHash,
	}, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultVerified
	case errors.Is(err, ErrAlreadyVerified):
		return metrics.ResultConflict
	case errors.Is(err, ErrTweetMismatch):
		return metrics.ResultFailed
	default:
		return metrics.ResultRejected
	}
}

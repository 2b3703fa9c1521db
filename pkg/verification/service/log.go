package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-verifier/pkg/app/errors"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

const serviceName = "VerificationService"

const tweetURLMaxLen = 80

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the verification Service.
// It logs method entry/exit, duration and errors. Client errors are logged at
// warn level, everything else at error level.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Verify wraps the service method with logging
func (ls *logService) Verify(
	ctx context.Context,
	req *verification.VerifyRequest,
	opts verification.Options,
) (resp *verification.VerifyResponse, err error) {
	start := time.Now()

	var wallet, handle, tweetURL string
	if req != nil {
		wallet, handle, tweetURL = req.WalletAddress, req.TwitterHandle, truncateString(req.TweetURL, tweetURLMaxLen)
	}

	ls.logger.Info("Verify started",
		zap.String("service", serviceName),
		zap.String("method", "Verify"),
		zap.String("wallet_address", wallet),
		zap.String("twitter_handle", handle),
		zap.String("tweet_url", tweetURL),
		zap.Bool("mock", opts.Mock),
		zap.Bool("force_success", opts.ForceSuccess),
		zap.Bool("demo", opts.Demo),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logFailure("Verify failed", err,
				zap.String("service", serviceName),
				zap.String("method", "Verify"),
				zap.String("wallet_address", wallet),
				zap.Duration("duration", duration),
			)
			return
		}

		ls.logger.Info("Verify completed",
			zap.String("service", serviceName),
			zap.String("method", "Verify"),
			zap.String("wallet_address", resp.Verification.WalletAddress),
			zap.String("blockchain_type", string(resp.Verification.BlockchainType)),
			zap.Bool("crosschain", resp.Verification.IsCrosschainVerification),
			zap.String("request_id", resp.Verification.FlareVerification.RequestID),
			zap.String("tx_hash", resp.TransactionHash),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Verify(ctx, req, opts)
}

// GetStatus wraps the service method with logging
func (ls *logService) GetStatus(ctx context.Context, wallet string) (rec *verification.Record, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil && !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			ls.logFailure("GetStatus failed", err,
				zap.String("service", serviceName),
				zap.String("method", "GetStatus"),
				zap.String("wallet_address", wallet),
				zap.Duration("duration", duration),
			)
			return
		}

		ls.logger.Debug("GetStatus completed",
			zap.String("service", serviceName),
			zap.String("method", "GetStatus"),
			zap.String("wallet_address", wallet),
			zap.Bool("verified", rec != nil),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetStatus(ctx, wallet)
}

func (ls *logService) logFailure(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if apperrors.IsInternalError(err) {
		ls.logger.Error(msg, fields...)
		return
	}
	ls.logger.Warn(msg, fields...)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

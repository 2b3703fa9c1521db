package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/pkg/agent"
	apperrors "github.com/chainsafe/social-verifier/pkg/app/errors"
)

const serviceName = "AgentService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the agent Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Status wraps the service method with logging
func (ls *logService) Status(ctx context.Context) (resp *agent.StatusResponse, err error) {
	start := time.Now()

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Status"),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err != nil:
			ls.logger.Error("Status failed", append(fields, zap.Error(err))...)
		case !resp.Success:
			ls.logger.Warn("Status served fallback", fields...)
		default:
			ls.logger.Debug("Status completed", append(fields,
				zap.String("agent", resp.Data.Address),
				zap.Bool("authorized", resp.Data.IsAuthorized),
				zap.String("balance", resp.Data.Balance),
			)...)
		}
	}()

	return ls.svc.Status(ctx)
}

// Act wraps the service method with logging
func (ls *logService) Act(ctx context.Context, req *agent.ActionRequest) (res *agent.ActionResult, err error) {
	start := time.Now()

	var action, target string
	if req != nil {
		action, target = req.Action, req.Agent
	}

	ls.logger.Info("Act started",
		zap.String("service", serviceName),
		zap.String("method", "Act"),
		zap.String("action", action),
		zap.String("agent", target),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			fields := []zap.Field{
				zap.String("service", serviceName),
				zap.String("method", "Act"),
				zap.String("action", action),
				zap.Duration("duration", duration),
				zap.Error(err),
			}
			if apperrors.IsInternalError(err) {
				ls.logger.Error("Act failed", fields...)
			} else {
				ls.logger.Warn("Act failed", fields...)
			}
			return
		}

		ls.logger.Info("Act completed",
			zap.String("service", serviceName),
			zap.String("method", "Act"),
			zap.String("action", res.Action),
			zap.String("agent", res.Agent),
			zap.String("tx_hash", res.TxHash),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Act(ctx, req)
}

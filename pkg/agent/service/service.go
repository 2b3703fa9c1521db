package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/internal/metrics"
	"github.com/chainsafe/social-verifier/pkg/agent"
	apperrors "github.com/chainsafe/social-verifier/pkg/app/errors"
)

const fetchFailedMessage = "Failed to fetch Flow ETF agent data"

// Data sources reported on agent status reads
const (
	sourceChain    = "chain"
	sourceFallback = "fallback"
)

var (
	ErrReaderUnavailable = errors.New("agent contract reader not configured")
	ErrMissingAction     = errors.New("missing action")
	ErrUnsupportedAction = errors.New("unsupported action")
)

// ContractReader reads agent state from the vault contract.
//
//go:generate mockery --name ContractReader --output mocks --outpkg mocks --filename mock_contract_reader.go --with-expecter
type ContractReader interface {
	AgentWallet(ctx context.Context) (common.Address, error)
	AuthorizedAgents(ctx context.Context, agent common.Address) (bool, error)
	BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error)
}

// Service defines the agent business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Status never fails on chain errors; it reports the fallback snapshot
	// with Success=false instead.
	Status(ctx context.Context) (*agent.StatusResponse, error)
	Act(ctx context.Context, req *agent.ActionRequest) (*agent.ActionResult, error)
}

// Hasher fabricates identifiers for synthetic operations and transactions.
type Hasher interface {
	TxHash() string
	Hex(n int) string
}

// Options holds the balance formatting settings.
type Options struct {
	Decimals int32
	Symbol   string
}

type agentService struct {
	reader ContractReader
	hasher Hasher
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new agent service. A nil reader makes every status
// read fall back.
func NewService(reader ContractReader, hasher Hasher, opts Options, logger *zap.Logger) Service {
	if opts.Symbol == "" {
		opts.Symbol = "FLOW"
	}
	if opts.Decimals == 0 {
		opts.Decimals = 18
	}
	return &agentService{
		reader: reader,
		hasher: hasher,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

func (s *agentService) Status(ctx context.Context) (*agent.StatusResponse, error) {
	now := s.now().UTC()

	status, err := s.readStatus(ctx, now)
	if err != nil {
		s.logger.Warn("Failed to read agent from vault, serving fallback", zap.Error(err))
		metrics.AgentStatusReads.WithLabelValues(sourceFallback).Inc()
		return &agent.StatusResponse{
			Success: false,
			Error:   fetchFailedMessage,
			Data:    agent.Fallback(now),
		}, nil
	}

	metrics.AgentStatusReads.WithLabelValues(sourceChain).Inc()
	return &agent.StatusResponse{Success: true, Data: status}, nil
}

func (s *agentService) readStatus(ctx context.Context, now time.Time) (*agent.Status, error) {
	if s.reader == nil {
		return nil, ErrReaderUnavailable
	}

	wallet, err := s.reader.AgentWallet(ctx)
	if err != nil {
		return nil, err
	}
	authorized, err := s.reader.AuthorizedAgents(ctx, wallet)
	if err != nil {
		return nil, err
	}
	balance, err := s.reader.BalanceAt(ctx, wallet)
	if err != nil {
		return nil, err
	}

	state := agent.StatusInactive
	if authorized {
		state = agent.StatusActive
	}

	return &agent.Status{
		Address:         wallet.Hex(),
		IsAuthorized:    authorized,
		Balance:         agent.FormatBalance(balance, s.opts.Decimals, s.opts.Symbol),
		TotalOperations: agent.TotalOperations,
		LastOperation:   now,
		Status:          state,
		Operations:      s.recentOperations(now),
	}, nil
}

// recentOperations fabricates the activity feed shown next to the live data.
func (s *agentService) recentOperations(now time.Time) []agent.Operation {
	return []agent.Operation{
		{
			ID:          s.hasher.Hex(8),
			Type:        "Rebalance",
			Timestamp:   now,
			TargetToken: "WFLOW",
			Amount:      "25",
			Status:      "completed",
			TxHash:      s.hasher.TxHash(),
		},
		{
			ID:          s.hasher.Hex(8),
			Type:        "Cross-Chain Transfer",
			Timestamp:   now.Add(-30 * time.Minute),
			TargetToken: "USDC",
			Amount:      "500",
			ChainID:     1,
			Status:      "completed",
			TxHash:      s.hasher.TxHash(),
		},
		{
			ID:        s.hasher.Hex(8),
			Type:      "Fee Collection",
			Timestamp: now.Add(-time.Hour),
			Amount:    "0.05",
			Status:    "completed",
			TxHash:    s.hasher.TxHash(),
		},
	}
}

func (s *agentService) Act(ctx context.Context, req *agent.ActionRequest) (*agent.ActionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.GeneralError(err)
	}
	if req == nil || req.Action == "" {
		metrics.AgentActions.WithLabelValues(actionLabelMissing, "rejected").Inc()
		return nil, apperrors.BadRequestError(ErrMissingAction, "Missing required parameter: action")
	}

	result := &agent.ActionResult{
		Action:    req.Action,
		Agent:     req.Agent,
		Timestamp: s.now().UTC(),
	}

	switch {
	case req.Action == agent.ActionSetAgent && req.Agent != "":
	case req.Action == agent.ActionAuthorize && req.Agent != "":
		authorized := req.Authorized
		result.Authorized = &authorized
	default:
		// the action label only carries known names
		metrics.AgentActions.WithLabelValues(actionLabel(req.Action), "rejected").Inc()
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: %s", ErrUnsupportedAction, req.Action),
			fmt.Sprintf("Unsupported action: %s", req.Action),
		)
	}

	result.TxHash = s.hasher.TxHash()
	metrics.AgentActions.WithLabelValues(req.Action, "simulated").Inc()
	return result, nil
}

const (
	actionLabelMissing     = "missing"
	actionLabelUnsupported = "unsupported"
)

func actionLabel(action string) string {
	switch action {
	case agent.ActionSetAgent, agent.ActionAuthorize:
		return action
	case "":
		return actionLabelMissing
	default:
		return actionLabelUnsupported
	}
}

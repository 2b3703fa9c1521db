package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/pkg/config"
	"github.com/chainsafe/social-verifier/pkg/ethereum/contracts"
)

var ErrVaultNotConfigured = errors.New("flow vault contract not configured")

// VaultReader reads agent state from the ETF vault contract on Flow EVM.
type VaultReader struct {
	client      *ethclient.Client
	vault       *contracts.ETFVaultCaller
	vaultAddr   common.Address
	callTimeout time.Duration
	logger      *zap.Logger
}

// NewVaultReader dials cfg.RPCURL and binds the vault contract.
func NewVaultReader(ctx context.Context, cfg *config.FlowConfig, logger *zap.Logger) (*VaultReader, error) {
	if cfg.RPCURL == "" || cfg.VaultContract == "" {
		return nil, ErrVaultNotConfigured
	}
	if !common.IsHexAddress(cfg.VaultContract) {
		return nil, fmt.Errorf("invalid vault contract address %q", cfg.VaultContract)
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Flow EVM RPC: %w", err)
	}

	reader, err := newVaultReader(client, common.HexToAddress(cfg.VaultContract), cfg.CallTimeout, logger)
	if err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("Connected to Flow EVM",
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("vault_contract", reader.vaultAddr.Hex()),
	)
	return reader, nil
}

func newVaultReader(client *ethclient.Client, vaultAddr common.Address, callTimeout time.Duration, logger *zap.Logger) (*VaultReader, error) {
	vault, err := contracts.NewETFVaultCaller(vaultAddr, client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind vault contract: %w", err)
	}
	return &VaultReader{
		client:      client,
		vault:       vault,
		vaultAddr:   vaultAddr,
		callTimeout: callTimeout,
		logger:      logger,
	}, nil
}

// Close closes the RPC connection
func (r *VaultReader) Close() {
	r.client.Close()
}

// AgentWallet returns the vault's current agent wallet.
func (r *VaultReader) AgentWallet(ctx context.Context) (common.Address, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	addr, err := r.vault.AgentWallet(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, fmt.Errorf("agentWallet call failed: %w", err)
	}
	return addr, nil
}

// AuthorizedAgents reports whether agent is authorized on the vault.
func (r *VaultReader) AuthorizedAgents(ctx context.Context, agent common.Address) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ok, err := r.vault.AuthorizedAgents(&bind.CallOpts{Context: ctx}, agent)
	if err != nil {
		return false, fmt.Errorf("authorizedAgents call failed: %w", err)
	}
	return ok, nil
}

// BalanceAt returns the latest native balance of addr in wei.
func (r *VaultReader) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	balance, err := r.client.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", addr.Hex(), err)
	}
	return balance, nil
}

func (r *VaultReader) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.callTimeout)
}

package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/chainsafe/social-verifier/pkg/config"
)

// ChainNotAddedCode is the EIP-1193 error code a wallet returns when asked to
// switch to a chain it does not know.
const ChainNotAddedCode = 4902

// NativeCurrency describes a chain's gas token for wallet_addEthereumChain.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// ChainParams is the EIP-3085 wallet_addEthereumChain parameter object.
type ChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

// FlareChainParams builds the add-chain parameters for the configured Flare network.
func FlareChainParams(cfg *config.FlareConfig) ChainParams {
	return ChainParams{
		ChainID:   hexutil.EncodeUint64(uint64(cfg.ChainID)),
		ChainName: cfg.ChainName,
		NativeCurrency: NativeCurrency{
			Name:     cfg.CurrencyName,
			Symbol:   cfg.CurrencySymbol,
			Decimals: 18,
		},
		RPCURLs:           []string{cfg.RPCURL},
		BlockExplorerURLs: []string{cfg.ExplorerURL},
	}
}

// WalletProvider talks to an injected wallet over JSON-RPC using the
// EIP-1193 request methods.
type WalletProvider struct {
	client *rpc.Client
}

// DialWallet connects to a wallet provider endpoint.
func DialWallet(ctx context.Context, url string) (*WalletProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet provider: %w", err)
	}
	return NewWalletProvider(client), nil
}

// NewWalletProvider wraps an existing RPC client.
func NewWalletProvider(client *rpc.Client) *WalletProvider {
	return &WalletProvider{client: client}
}

// Close closes the underlying RPC connection
func (w *WalletProvider) Close() {
	w.client.Close()
}

// RequestAccounts asks the wallet for account access and returns the exposed accounts.
func (w *WalletProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := w.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, fmt.Errorf("eth_requestAccounts failed: %w", err)
	}
	return accounts, nil
}

// SwitchChain asks the wallet to switch to chainID (0x-prefixed hex).
func (w *WalletProvider) SwitchChain(ctx context.Context, chainID string) error {
	params := struct {
		ChainID string `json:"chainId"`
	}{ChainID: chainID}
	if err := w.client.CallContext(ctx, nil, "wallet_switchEthereumChain", params); err != nil {
		return fmt.Errorf("wallet_switchEthereumChain failed: %w", err)
	}
	return nil
}

// AddChain asks the wallet to add and switch to the described chain.
func (w *WalletProvider) AddChain(ctx context.Context, params ChainParams) error {
	if err := w.client.CallContext(ctx, nil, "wallet_addEthereumChain", params); err != nil {
		return fmt.Errorf("wallet_addEthereumChain failed: %w", err)
	}
	return nil
}

// IsChainNotAdded reports whether err is the wallet's unknown-chain error.
func IsChainNotAdded(err error) bool {
	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && rpcErr.ErrorCode() == ChainNotAddedCode
}

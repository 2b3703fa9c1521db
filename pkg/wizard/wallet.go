package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/social-verifier/pkg/ethereum"
)

var ErrNoAccounts = errors.New("wallet exposed no accounts")

// WalletConnector is an injected EIP-1193 wallet. *ethereum.WalletProvider
// implements it.
type WalletConnector interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	SwitchChain(ctx context.Context, chainID string) error
	AddChain(ctx context.Context, params ethereum.ChainParams) error
}

// ConnectWallet requests account access and fills the wallet field with the
// first exposed account.
func (w *Wizard) ConnectWallet(ctx context.Context, wallet WalletConnector) (string, error) {
	accounts, err := wallet.RequestAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to connect wallet: %w", err)
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}
	w.SetWallet(accounts[0])
	return w.wallet, nil
}

// SwitchNetwork switches the wallet to the given chain, adding it first when
// the wallet does not know it. It reports whether the chain had to be added.
func SwitchNetwork(ctx context.Context, wallet WalletConnector, params ethereum.ChainParams) (bool, error) {
	err := wallet.SwitchChain(ctx, params.ChainID)
	if err == nil {
		return false, nil
	}
	if !ethereum.IsChainNotAdded(err) {
		return false, err
	}
	if err := wallet.AddChain(ctx, params); err != nil {
		return false, err
	}
	return true, nil
}

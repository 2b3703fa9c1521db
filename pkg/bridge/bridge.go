// Package bridge simulates the cross-chain relay that pays Flare gas on behalf
// of a Flow wallet. Nothing is sent on chain.
package bridge

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/social-verifier/internal/metrics"
	"github.com/chainsafe/social-verifier/pkg/ethereum"
)

const (
	StatusCompleted = "completed"

	estimatedTime = "30 seconds"
)

// Info describes one simulated bridge transfer.
type Info struct {
	BridgeID         string `json:"bridgeId"`
	SourceChain      string `json:"sourceChain"`
	DestinationChain string `json:"destinationChain"`
	SourceAddress    string `json:"sourceAddress"`
	GasAmount        string `json:"gasAmount"`
	BridgeStatus     string `json:"bridgeStatus"`
	BridgeTxHash     string `json:"bridgeTxHash"`
	EstimatedTime    string `json:"estimatedTime"`
}

// Simulator fabricates bridge transfers.
type Simulator struct {
	sourceChain      string
	destinationChain string
	gasAmount        decimal.Decimal
	entropy          *ethereum.Entropy
	now              func() time.Time
}

// NewSimulator creates a Simulator relaying gasAmount (a decimal string) from
// sourceChain to destinationChain.
func NewSimulator(sourceChain, destinationChain, gasAmount string, entropy *ethereum.Entropy) (*Simulator, error) {
	gas, err := decimal.NewFromString(gasAmount)
	if err != nil {
		return nil, fmt.Errorf("parse gas amount: %w", err)
	}
	if gas.IsNegative() {
		return nil, fmt.Errorf("gas amount must not be negative: %s", gasAmount)
	}
	if entropy == nil {
		entropy = ethereum.NewEntropy()
	}
	return &Simulator{
		sourceChain:      sourceChain,
		destinationChain: destinationChain,
		gasAmount:        gas,
		entropy:          entropy,
		now:              time.Now,
	}, nil
}

// Simulate returns a completed transfer for sourceAddress.
func (s *Simulator) Simulate(sourceAddress string) *Info {
	metrics.BridgeSimulations.WithLabelValues(s.sourceChain, s.destinationChain).Inc()

	return &Info{
		BridgeID:         fmt.Sprintf("bridge_%d", s.now().UnixMilli()),
		SourceChain:      s.sourceChain,
		DestinationChain: s.destinationChain,
		SourceAddress:    sourceAddress,
		GasAmount:        s.gasAmount.String(),
		BridgeStatus:     StatusCompleted,
		BridgeTxHash:     s.entropy.TxHash(),
		EstimatedTime:    estimatedTime,
	}
}

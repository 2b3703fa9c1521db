// Package agent models the Flow ETF vault agent exposed by /api/flow/agent.
package agent

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Agent lifecycle states
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Supported write actions
const (
	ActionSetAgent  = "setAgent"
	ActionAuthorize = "authorize"
)

// TotalOperations is the operation count reported for the agent. The vault
// does not expose a counter, so the figure is fixed.
const TotalOperations = 142

// FallbackAddress is reported when the vault cannot be read.
const FallbackAddress = "0x7Fc6C6C0eFe82471e15d4bc1b49c60A22C6F103F"

// Operation is one entry of the agent's recent activity.
type Operation struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	TargetToken string    `json:"targetToken,omitempty"`
	Amount      string    `json:"amount"`
	ChainID     int64     `json:"chainId,omitempty"`
	Status      string    `json:"status"`
	TxHash      string    `json:"txHash"`
}

// Status is the agent snapshot returned to clients.
type Status struct {
	Address         string      `json:"address"`
	IsAuthorized    bool        `json:"isAuthorized"`
	Balance         string      `json:"balance"`
	TotalOperations int         `json:"totalOperations"`
	LastOperation   time.Time   `json:"lastOperation"`
	Status          string      `json:"status"`
	Operations      []Operation `json:"operations"`
}

// StatusResponse wraps Status. Success is false when the snapshot is the
// fallback rather than live chain data.
type StatusResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Data    *Status `json:"data"`
}

// ActionRequest is the body of POST /api/flow/agent.
type ActionRequest struct {
	Action     string `json:"action"`
	Agent      string `json:"agent"`
	Authorized bool   `json:"authorized"`
}

// ActionResult describes a simulated vault write.
type ActionResult struct {
	TxHash     string    `json:"txHash"`
	Action     string    `json:"action"`
	Agent      string    `json:"agent"`
	Authorized *bool     `json:"authorized,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ActionResponse is the envelope for POST /api/flow/agent.
type ActionResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Data    *ActionResult `json:"data,omitempty"`
}

// Fallback returns the placeholder snapshot served when the vault is unreachable.
func Fallback(now time.Time) *Status {
	return &Status{
		Address:         FallbackAddress,
		IsAuthorized:    true,
		Balance:         "0.5 FLOW",
		TotalOperations: TotalOperations,
		LastOperation:   now,
		Status:          StatusActive,
		Operations:      []Operation{},
	}
}

// FormatBalance renders a base-unit amount with the given decimals and symbol,
// e.g. 500000000000000000 wei -> "0.5 FLOW". Whole amounts keep one
// fractional digit ("1.0 FLOW").
func FormatBalance(amount *big.Int, decimals int32, symbol string) string {
	if amount == nil {
		amount = new(big.Int)
	}
	s := decimal.NewFromBigInt(amount, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + " " + symbol
}

// Package address classifies and normalizes wallet addresses, Twitter handles
// and tweet references accepted by the verification API.
package address

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainType is the blockchain family an address belongs to.
type ChainType string

const (
	Ethereum ChainType = "ethereum"
	Flow     ChainType = "flow"
	Unknown  ChainType = "unknown"
)

var (
	ErrInvalidAddress = errors.New("invalid wallet address format")
	ErrInvalidHandle  = errors.New("invalid Twitter handle format")
	ErrInvalidTweet   = errors.New("invalid tweet URL format")
)

var (
	ethereumPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	flowPattern     = regexp.MustCompile(`^(?:0x)?(?:[a-fA-F0-9]{8}|[a-fA-F0-9]{16})$`)
	handlePattern   = regexp.MustCompile(`^[a-zA-Z0-9_]{1,15}$`)
	tweetIDPattern  = regexp.MustCompile(`^\d+$`)
	tweetURLPattern = regexp.MustCompile(`(?:twitter\.com|x\.com)/[^/]+/status/(\d+)`)
)

// Classify reports which chain family s belongs to.
// Ethereum-style is 0x followed by 40 hex chars; Flow-style is 8 or 16 hex
// chars with an optional 0x prefix.
func Classify(s string) ChainType {
	switch {
	case ethereumPattern.MatchString(s):
		return Ethereum
	case flowPattern.MatchString(s):
		return Flow
	default:
		return Unknown
	}
}

// Validate returns ErrInvalidAddress unless s is an Ethereum- or Flow-style address.
func Validate(s string) error {
	if Classify(s) == Unknown {
		return ErrInvalidAddress
	}
	return nil
}

// Normalize returns the canonical storage key for s.
//
// Ethereum-style addresses are lower-cased with their 0x prefix kept; Flow
// addresses are lower-cased with the prefix removed. The result classifies the
// same as s, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	switch Classify(s) {
	case Ethereum:
		return strings.ToLower(common.HexToAddress(s).Hex())
	case Flow:
		return strings.TrimPrefix(strings.ToLower(s), "0x")
	default:
		return strings.ToLower(s)
	}
}

// IsCrossChain reports whether verifying s requires bridging to Flare.
func IsCrossChain(s string) bool {
	return Classify(s) == Flow
}

// ValidateTwitterHandle accepts 1-15 word characters after an optional leading "@".
func ValidateTwitterHandle(handle string) error {
	if !handlePattern.MatchString(strings.TrimPrefix(handle, "@")) {
		return ErrInvalidHandle
	}
	return nil
}

// NormalizeTwitterHandle strips the leading "@" and lower-cases the handle.
func NormalizeTwitterHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(handle, "@"))
}

// ExtractTweetID returns the numeric status ID referenced by input.
// A bare numeric ID is returned unchanged; otherwise input must contain a
// twitter.com or x.com status URL.
func ExtractTweetID(input string) (string, bool) {
	if tweetIDPattern.MatchString(input) {
		return input, true
	}
	m := tweetURLPattern.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ShortAddress renders addr as 0x1234...abcd for display.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

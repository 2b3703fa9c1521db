package verification

import (
	"fmt"
	"strings"
	"time"

	"github.com/chainsafe/social-verifier/pkg/address"
	"github.com/chainsafe/social-verifier/pkg/attestation"
	"github.com/chainsafe/social-verifier/pkg/bridge"
)

// Verification methods
const (
	MethodFlare = "flare"
	MethodTweet = "tweet"
	MethodBio   = "bio"
)

// RequiredHashtags must appear in a verification tweet.
var RequiredHashtags = []string{"#FlareNetwork", "#Web3Verification"}

// Troubleshooting tips returned when a tweet fails verification.
var Troubleshooting = []string{
	"Make sure you copied the exact wallet address from the form",
	"Verify the tweet contains the required hashtags: #FlareNetwork #Web3Verification",
	"The tweet must be public and accessible",
	"Wait a few minutes after posting before trying verification",
}

// Record is the stored outcome of a successful verification, keyed by the
// normalized wallet address.
type Record struct {
	WalletAddress            string            `json:"walletAddress"`
	OriginalWalletAddress    string            `json:"originalWalletAddress"`
	BlockchainType           address.ChainType `json:"blockchainType"`
	IsCrosschainVerification bool              `json:"isCrosschainVerification"`
	TwitterHandle            string            `json:"twitterHandle"`
	VerificationMethod       string            `json:"verificationMethod"`
	Verified                 bool              `json:"verified"`
	VerifiedAt               time.Time         `json:"verifiedAt"`
	TweetID                  string            `json:"tweetId"`
	BridgeInfo               *bridge.Info      `json:"bridgeInfo"`
	FlareVerification        FlareVerification `json:"flareVerification"`
}

// FlareVerification holds the attestation metadata for a record.
type FlareVerification struct {
	RequestID             string                  `json:"requestId"`
	TxHash                string                  `json:"txHash"`
	TweetID               string                  `json:"tweetId"`
	TwitterUserID         string                  `json:"twitterUserId"`
	TwitterHandle         string                  `json:"twitterHandle"`
	WalletAddress         string                  `json:"walletAddress"`
	OriginalWalletAddress string                  `json:"originalWalletAddress"`
	BlockchainType        address.ChainType       `json:"blockchainType"`
	FDCAttestation        attestation.Attestation `json:"fdcAttestation"`
}

// VerifyRequest is the body of POST /api/verify-flare.
type VerifyRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
	TwitterHandle string `json:"twitterHandle" validate:"required"`
	TweetURL      string `json:"tweetUrl" validate:"required"`
}

// Options are the query flags of POST /api/verify-flare.
type Options struct {
	// Mock selects the simulated pipeline. Defaults to true.
	Mock bool
	// ForceSuccess skips the random failure roll.
	ForceSuccess bool
	// Demo allows re-verifying an already verified wallet.
	Demo bool
}

// VerifyResponse is returned on a successful verification.
type VerifyResponse struct {
	Success         bool                     `json:"success"`
	Message         string                   `json:"message"`
	Verification    *Record                  `json:"verification"`
	FDCResponse     *attestation.FDCResponse `json:"fdcResponse"`
	TransactionHash string                   `json:"transactionHash"`
}

// FailureDetails accompanies a failed tweet check.
type FailureDetails struct {
	ExpectedWallet  string   `json:"expectedWallet"`
	ExpectedContent string   `json:"expectedContent"`
	Troubleshooting []string `json:"troubleshooting"`
}

// NotVerified is returned by GET /api/verify-flare when no record exists.
type NotVerified struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// TweetContent is the text a user must tweet to verify wallet.
func TweetContent(wallet string) string {
	if wallet == "" {
		wallet = "[WALLET_ADDRESS]"
	}
	return fmt.Sprintf("Verifying my wallet %s on Flare Network %s", wallet, strings.Join(RequiredHashtags, " "))
}

// BioCode is the code a user places in their profile bio for the bio method.
func BioCode(wallet string) string {
	if wallet == "" {
		wallet = "[WALLET_ADDRESS]"
	}
	return "flare-verify:" + wallet
}

// MissingHashtags returns the required hashtags absent from content.
func MissingHashtags(content string) []string {
	var missing []string
	for _, tag := range RequiredHashtags {
		if !strings.Contains(content, tag) {
			missing = append(missing, tag)
		}
	}
	return missing
}
